package main

// indexPage is the demo shell: styles for the default class names and
// the event bridge that forwards data-on-* bindings over the socket.
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>dropdown demo</title>
<style>
  body { font-family: sans-serif; margin: 4rem; }
  .dropdown-container { position: relative; width: 16rem; }
  .dropdown-button { width: 100%; padding: 0.5rem 0.75rem; text-align: left; cursor: pointer; }
  .dropdown-opened, .dropdown-closed { list-style: none; margin: 0.25rem 0 0; padding: 0;
    position: absolute; width: 100%; border: 1px solid #ccc; background: #fff; }
  .dropdown-closed { display: none; }
  .dropdown-item, .dropdown-item-active { padding: 0.5rem 0.75rem; cursor: pointer; }
  .dropdown-item:hover, .dropdown-item-active:hover { background: #eee; }
  .dropdown-item-active { background: #e4ecf7; font-weight: bold; }
  .dropdown-arrow-up::after { content: " \25B4"; }
  .dropdown-arrow-down::after { content: " \25BE"; }
</style>
</head>
<body>
<div id="app"></div>
<script>
(function () {
  var app = document.getElementById("app");
  var ws = new WebSocket("ws://" + location.host + "/ws");

  ws.onmessage = function (e) {
    var frame = JSON.parse(e.data);
    if (frame.type === "render") {
      app.innerHTML = frame.html;
      wire();
    }
  };

  function wire() {
    var all = app.querySelectorAll("*");
    for (var i = 0; i < all.length; i++) {
      bind(all[i]);
    }
  }

  function bind(el) {
    for (var i = 0; i < el.attributes.length; i++) {
      var attr = el.attributes[i];
      if (attr.name.indexOf("data-on-") !== 0) continue;
      (function (type, id) {
        el.addEventListener(type, function (ev) {
          if (el.hasAttribute("data-stop-" + type)) ev.stopPropagation();
          if (el.hasAttribute("data-prevent-" + type)) ev.preventDefault();
          ws.send(JSON.stringify({ id: id }));
        });
      })(attr.name.slice(8), attr.value);
    }
  }
})();
</script>
</body>
</html>
`
