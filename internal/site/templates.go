package site

// layoutTemplate wraps every page. Each route supplies a "body" template.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.Name}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="route-{{.Route}}">
  <header class="top-bar">
    <a href="/" class="brand">{{.Name}}</a>
    <nav class="top-links"><a href="/">Sections</a><a href="/practice/">Practice</a></nav>
  </header>
  <div class="layout">
    {{template "body" .}}
  </div>
  <script src="/static/script.js"></script>
</body>
</html>
{{define "sidebar"}}
<aside class="sidebar">
  <nav class="sidebar-nav" id="sidebar-nav">
    <ul>
      {{- range .Page.Items "sidebar-nav"}}
      <li>{{if .Href}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>{{else}}{{.Title}}{{end}}</li>
      {{- end}}
    </ul>
  </nav>
</aside>
{{end}}`

const homeTemplate = `<main class="content">
  <h1>Sections</h1>
  <div class="cards" id="sections-container">
    {{- range .Page.Items "sections-container"}}
    <div class="card" data-href="{{.Href}}" onclick="window.location.replace(this.dataset.href)">
      <h2><a href="{{.Href}}">{{.Title}}</a></h2>
      <p>{{.Description}}</p>
    </div>
    {{- end}}
  </div>
</main>`

const sectionTemplate = `{{template "sidebar" .}}
<main class="content">
  <h1 id="section-title">{{.Page.Text "section-title"}}</h1>
  <p class="hint">Pick a topic from the sidebar.</p>
</main>`

const topicTemplate = `{{template "sidebar" .}}
<main class="content">
  <h1 id="topic-title">{{.Page.Text "topic-title"}}</h1>
  <section>
    <h2>Explanation</h2>
    <p id="explanation-text">{{.Page.Text "explanation-text"}}</p>
  </section>
  <section>
    <h2>Syntax</h2>
    <div id="syntax-code" class="code">{{if .Page.Highlighted "syntax-code"}}{{.Page.HTML "syntax-code"}}{{else}}<pre><code>{{.Page.Text "syntax-code"}}</code></pre>{{end}}</div>
  </section>
  <section>
    <h2>Example</h2>
    <div id="example-code" class="code">{{if .Page.Highlighted "example-code"}}{{.Page.HTML "example-code"}}{{else}}<pre><code>{{.Page.Text "example-code"}}</code></pre>{{end}}</div>
  </section>
  <section>
    <h2>Logic</h2>
    <p id="logic-text">{{.Page.Text "logic-text"}}</p>
  </section>
  <section>
    <h2>Exercises</h2>
    <ul id="exercises-list">
      {{- range .Page.Items "exercises-list"}}
      <li>{{.HTML}}</li>
      {{- end}}
    </ul>
  </section>
</main>`

const practiceTemplate = `<aside class="sidebar">
  <nav class="sidebar-nav">
    <ul id="program-list">
      {{- range .Page.Items "program-list"}}
      <li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a></li>
      {{- end}}
    </ul>
  </nav>
</aside>
<main class="content">
  <h1 id="prog-title">{{.Page.Text "prog-title"}}</h1>
  <p id="prog-statement">{{.Page.Text "prog-statement"}}</p>
  <div class="samples">
    <div><h3>Input</h3><pre id="prog-input">{{.Page.Text "prog-input"}}</pre></div>
    <div><h3>Output</h3><pre id="prog-output">{{.Page.Text "prog-output"}}</pre></div>
  </div>
  <div class="toggles">
    <button type="button" data-toggle="logic-box">Show logic</button>
    <button type="button" data-toggle="solution-box">Show solution</button>
  </div>
  <div id="logic-box" class="panel"{{if .Page.Hidden "logic-box"}} hidden{{end}}>{{.Page.Text "logic-box"}}</div>
  <pre id="solution-box" class="panel"{{if .Page.Hidden "solution-box"}} hidden{{end}}>{{.Page.Text "solution-box"}}</pre>
  <div id="animation-panel" class="animation-panel{{if .Page.Active "animation-panel"}} active{{end}}">{{.Page.Text "animation-panel"}}</div>
  <form method="post" action="{{.Action}}" class="editor-form">
    <textarea id="java-editor" name="code" rows="14" spellcheck="false">{{.Page.Text "java-editor"}}</textarea>
    <div class="actions">
      <button type="submit" name="action" value="run" id="run-button">Run</button>
      <button type="submit" name="action" value="steps" id="steps-button">Show steps</button>
    </div>
  </form>
  <h3>Output</h3>
  <pre id="program-output">{{.Page.Text "program-output"}}</pre>
  <h3>Steps</h3>
  <div id="step-output">
    {{- range .Page.Items "step-output"}}
    <div>{{.Title}}</div>
    {{- end}}
  </div>
</main>`

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --accent: #0969da;
  --border: #d0d7de;
  --panel: #f6f8fa;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; color: var(--fg); background: var(--bg); }
a { color: var(--accent); text-decoration: none; }
.top-bar { display: flex; justify-content: space-between; align-items: center; padding: 0.75rem 1.5rem; border-bottom: 1px solid var(--border); }
.brand { font-weight: 600; font-size: 1.1rem; color: var(--fg); }
.top-links a { margin-left: 1rem; }
.layout { display: flex; min-height: calc(100vh - 3rem); }
.sidebar { width: 260px; border-right: 1px solid var(--border); padding: 1rem; background: var(--panel); }
.sidebar-nav ul { list-style: none; margin: 0; padding: 0; }
.sidebar-nav li { padding: 0.3rem 0; color: var(--muted); }
.sidebar-nav a.active { font-weight: 600; color: var(--fg); border-left: 3px solid var(--accent); padding-left: 0.5rem; }
.content { flex: 1; padding: 1.5rem 2rem; max-width: 960px; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.card { border: 1px solid var(--border); border-radius: 8px; padding: 1rem; cursor: pointer; }
.card:hover { border-color: var(--accent); }
.card h2 { margin: 0 0 0.5rem; font-size: 1.1rem; }
.card p { margin: 0; color: var(--muted); }
.code pre, pre { background: var(--panel); border: 1px solid var(--border); border-radius: 6px; padding: 0.75rem; overflow-x: auto; }
.samples { display: flex; gap: 1rem; }
.samples > div { flex: 1; }
.panel { border: 1px solid var(--border); border-radius: 6px; padding: 0.75rem; margin: 0.5rem 0; }
.animation-panel { display: none; }
.animation-panel.active { display: block; }
textarea { width: 100%; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9rem; }
.actions button, .toggles button { margin: 0.5rem 0.5rem 0.5rem 0; }
#step-output div { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; padding: 0.1rem 0; }
`

// jsContent is the script served at /static/script.js. It keeps the
// practice page responsive without a full form round trip.
const jsContent = `(function () {
  document.querySelectorAll("[data-toggle]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var box = document.getElementById(btn.dataset.toggle);
      if (box) box.hidden = !box.hidden;
    });
  });

  var editor = document.getElementById("java-editor");
  var output = document.getElementById("program-output");
  var runBtn = document.getElementById("run-button");
  if (editor && output && runBtn) {
    runBtn.addEventListener("click", function (ev) {
      ev.preventDefault();
      output.textContent = "Running...";
      fetch("/api/run-java/", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ code: editor.value })
      })
        .then(function (resp) {
          return resp.json().then(function (data) {
            if (!resp.ok) {
              console.error("Run request failed:", resp.status, data.error);
            }
            return data;
          });
        })
        .then(function (data) {
          output.textContent = data.output || data.error || "No output returned.";
        })
        .catch(function (err) {
          console.error("Error running Java program:", err);
          output.textContent = "Error running Java code. Check server logs for details.";
        });
    });
  }

  var stepBtn = document.getElementById("steps-button");
  var stepBox = document.getElementById("step-output");
  if (editor && stepBox && stepBtn) {
    stepBtn.addEventListener("click", function (ev) {
      ev.preventDefault();
      stepBox.innerHTML = "";
      editor.value.split("\n").forEach(function (line, i) {
        var div = document.createElement("div");
        div.textContent = "Step " + (i + 1) + ": " + line.trim();
        stepBox.appendChild(div);
      });
    });
  }
})();
`
