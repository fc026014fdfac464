// Package pages holds trimmed-down copies of KomikCast pages used as test
// fixtures across packages.
package pages

// Listing is a catalog page (daftar-komik, project-list and search share it).
// The third item has no title and must never reach a caller.
const Listing = `
<html><body>
<div class="list-update_items-wrapper">
  <div class="list-update_item">
    <a href="https://komikcast.li/manga/one-piece/">
      <div class="list-update_item-image">
        <img src="https://komikcast.li/lazy.gif" data-src="https://cdn.komikcast.li/one-piece.jpg" />
      </div>
      <div class="list-update_item-info">
        <h3 class="title">One Piece</h3>
        <div class="other"><div class="chapter">Ch.1100</div></div>
      </div>
    </a>
  </div>
  <div class="list-update_item">
    <a href="https://komikcast.li/manga/solo-leveling/">
      <img src="https://cdn.komikcast.li/solo-leveling.jpg" />
      <span class="title"> Solo Leveling </span>
      <span class="latest">Ch.200</span>
    </a>
  </div>
  <div class="list-update_item">
    <a href="https://komikcast.li/manga/untitled/">
      <img src="https://cdn.komikcast.li/untitled.jpg" />
      <h3 class="title">   </h3>
    </a>
  </div>
</div>
</body></html>`

// Home is the landing page with its recommendation carousel. The last slide
// has no link and must be dropped.
const Home = `
<html><body>
<div class="swiper-container">
  <div class="swiper-wrapper">
    <div class="swiper-slide splide-slide">
      <a href="https://komikcast.li/manga/blue-lock/" title="Blue Lock">
        <img data-src="https://cdn.komikcast.li/blue-lock.jpg" src="" />
        <div class="title">Blue Lock (ignored)</div>
        <div class="type">Manga</div>
        <div class="chapter">Chapter 280</div>
        <div class="rating">
          <div class="rating-bintang"><span style="width:80%"></span></div>
          <div class="numscore">8.00</div>
        </div>
      </a>
    </div>
    <div class="swiper-slide splide-slide">
      <a href="https://komikcast.li/manga/the-beginning-after-the-end/">
        <img src="https://cdn.komikcast.li/tbate.jpg" />
        <div class="title">The Beginning After The End</div>
        <div class="type">Manhwa</div>
        <div class="chapter">Chapter 190</div>
        <div class="numscore">9.10</div>
      </a>
    </div>
    <div class="swiper-slide splide-slide">
      <a href="https://komikcast.li/manga/unrated/" title="Unrated">
        <div class="type">Manhua</div>
        <div class="rating-bintang"><span style="width: 0%"></span></div>
      </a>
    </div>
    <div class="swiper-slide splide-slide">
      <div class="title">No Link Here</div>
    </div>
  </div>
</div>
</body></html>`

// Detail is a series page with info block and chapter list. The third
// chapter row has no link.
const Detail = `
<html><body>
<div class="komik_info">
  <div class="komik_info-content-thumbnail">
    <img src="https://komikcast.li/lazy.gif" data-src="https://cdn.komikcast.li/one-piece-cover.jpg" />
  </div>
  <div class="komik_info-content">
    <h1 class="komik_info-content-body-title">One Piece Bahasa Indonesia</h1>
    <span class="komik_info-content-native">ワンピース</span>
    <div class="komik_info-content-genre">
      <a href="/genres/action/">action</a>
      <a href="/genres/adventure/">ADVENTURE</a>
      <a href="/genres/sci-fi/">sci-fi</a>
    </div>
    <div class="komik_info-content-meta">
      <span class="komik_info-content-info"><b>Author:</b> <span>Eiichiro Oda</span></span>
      <span class="komik_info-content-info"><b>Artist:</b> <span>Eiichiro Oda</span></span>
      <span class="komik_info-content-info"><b>Status</b> : Ongoing</span>
      <span class="komik_info-content-info"><b>Type:</b> <span>manga</span></span>
    </div>
  </div>
  <div class="komik_info-description">
    <div class="komik_info-description-sinopsis"><p>Gol D. Roger was known as the Pirate King.</p></div>
    <div class="komik_info-description-sinopsis"><p>  His last words sent the world to sea.  </p></div>
  </div>
  <div class="komik_info-chapters">
    <ul>
      <li>
        <a class="chapter-link-item" href="https://komikcast.li/chapter/one-piece-chapter-1100/">Chapter 1100</a>
        <div class="chapter-link-time">2 days ago</div>
      </li>
      <li>
        <a class="chapter-link-item" href="https://komikcast.li/chapter/one-piece-chapter-1099/">Chapter 1099</a>
        <div class="chapter-link-time">2023-10-07</div>
      </li>
      <li>
        <span class="chapter-link-item">Chapter 1098</span>
        <div class="chapter-link-time">3 weeks ago</div>
      </li>
    </ul>
  </div>
</div>
</body></html>`

// ChapterReader is a chapter page using the current reading-area layout. The
// first page URL appears three times.
const ChapterReader = `
<html><body>
<div id="chapter_body">
  <div class="main-reading-area">
    <img src="https://komikcast.li/lazy.gif" data-src="https://cdn.komikcast.li/ch1/01.jpg" />
    <img src="https://cdn.komikcast.li/ch1/01.jpg" />
    <img src="https://cdn.komikcast.li/ch1/02.jpg" />
    <img src="" />
    <img data-src="https://cdn.komikcast.li/ch1/01.jpg" />
    <img data-src="" src="https://cdn.komikcast.li/ch1/03.jpg" />
  </div>
</div>
</body></html>`

// ChapterLegacy is a chapter page from an older layout without the
// reading-area container.
const ChapterLegacy = `
<html><body>
<div class="reading-content">
  <img src="https://cdn.komikcast.li/old/01.jpg" />
  <img src="https://cdn.komikcast.li/old/02.jpg" />
</div>
</body></html>`

// Empty is a well-formed page with none of the expected markup.
const Empty = `<html><head><title>Maintenance</title></head><body><p>Be right back.</p></body></html>`
