package render

// DefaultShell is the page used when no shell file is configured. It
// carries every region the renderer addresses, with placeholder copy that
// shows through when content is missing.
const DefaultShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Portfolio</title>
  <meta name="description" content="">
  <meta property="og:type" content="website">
  <meta property="og:url" content="">
  <meta property="og:title" content="">
  <meta property="og:description" content="">
  <meta property="og:image" content="">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:title" content="">
  <meta name="twitter:description" content="">
  <meta name="twitter:image" content="">
  <link rel="stylesheet" href="https://unicons.iconscout.com/release/v4.0.0/css/line.css">
  <link rel="stylesheet" href="assets/css/styles.css">
</head>
<body>
  <header class="header" id="header">
    <nav class="nav container">
      <a href="#" class="nav__logo">Portfolio</a>
      <div class="nav__menu" id="nav-menu">
        <ul class="nav__list grid"></ul>
      </div>
    </nav>
  </header>

  <main class="main">
    <section class="home section" id="home">
      <div class="home__container container grid">
        <div class="home__content grid">
          <div class="home__social"></div>
          <div class="home__data">
            <h1 class="home__title">Hello</h1>
            <h3 class="home__subtitle"></h3>
            <p class="home__description"></p>
          </div>
        </div>
      </div>
    </section>

    <section class="about section" id="about">
      <div class="about__container container grid">
        <div class="about__data">
          <h2 class="section__title">About</h2>
          <span class="section__subtitle"></span>
          <p class="about__description"></p>
          <div class="about__info"></div>
          <div class="about__contact"></div>
        </div>
      </div>
    </section>

    <section class="skills section" id="skills">
      <h2 class="section__title">Skills</h2>
      <span class="section__subtitle"></span>
      <div class="skills__container container grid"></div>
    </section>

    <section class="qualification section" id="qualification">
      <h2 class="section__title">Qualification</h2>
      <span class="section__subtitle"></span>
      <div class="qualification__container container">
        <div class="qualification__tabs">
          <div class="qualification__button button--flex" data-target="#education">
            <i class="uil uil-graduation-cap qualification__icon"></i>
            Education
          </div>
          <div class="qualification__button button--flex" data-target="#work">
            <i class="uil uil-briefcase-alt qualification__icon"></i>
            Work
          </div>
        </div>
        <div class="qualification__sections">
          <div class="qualification__content qualification__active" id="education" data-content></div>
          <div class="qualification__content" id="work" data-content></div>
        </div>
      </div>
    </section>

    <section class="portfolio section" id="portfolio">
      <h2 class="section__title">Portfolio</h2>
      <span class="section__subtitle"></span>
      <div class="portfolio__container container"></div>
    </section>

    <section class="resume section" id="resume">
      <div class="resume__container container">
        <div class="resume__content">
          <h2 class="section__title">Resume</h2>
          <span class="section__subtitle"></span>
          <div class="resume__buttons"></div>
          <div class="resume__info"></div>
        </div>
      </div>
    </section>
  </main>

  <footer class="footer">
    <div class="footer__bg">
      <div class="footer__container container grid">
        <div>
          <h1 class="footer__title"></h1>
          <span class="footer__subtitle"></span>
        </div>
        <ul class="footer__links"></ul>
        <div class="footer__socials"></div>
      </div>
      <p class="footer__copy"></p>
    </div>
  </footer>
</body>
</html>
`

// BehaviorScript defines the handlers referenced by the inline onclick
// attributes of rendered fragments.
const BehaviorScript = `(function () {
  "use strict";

  function toggle(id, cls, on) {
    var el = document.getElementById(id);
    if (!el) return;
    if (on === undefined) {
      el.classList.toggle(cls);
    } else if (on) {
      el.classList.add(cls);
    } else {
      el.classList.remove(cls);
    }
  }

  window.toggleSkillsPopup = function (id) { toggle(id, "show-popup"); };
  window.closeSkillsPopup = function (id) { toggle(id, "show-popup", false); };
  window.openWorkModal = function (id) { toggle(id, "active-modal", true); };
  window.closeWorkModal = function (id) { toggle(id, "active-modal", false); };
  window.openProjectModal = function (id) { toggle(id, "active-modal", true); };
  window.closeProjectModal = function (id) { toggle(id, "active-modal", false); };

  // A click on the backdrop of an open popup or modal closes it.
  window.addEventListener("click", function (ev) {
    var t = ev.target;
    if (!t || !t.classList) return;
    if (t.classList.contains("skills__popup")) t.classList.remove("show-popup");
    if (t.classList.contains("work__modal") || t.classList.contains("project__modal")) {
      t.classList.remove("active-modal");
    }
  });
})();
`
