package server

// HTML shells for the serving layer. The viewer page embeds the raw
// markdown and renders it client-side so the served files stay opaque
// to the server.

const viewerTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link id="md-css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/github-markdown-css@5/github-markdown-dark.min.css">
<script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
<style>
  html[data-theme="dark"] body { background: #0d1117; color: #e6edf3; }
  html[data-theme="light"] body { background: #ffffff; color: #1f2328; }
  body {
    max-width: 960px;
    margin: 0 auto;
    padding: 2rem 1rem;
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
    transition: background 0.2s, color 0.2s;
  }
  .markdown-body { background: transparent; }
  html[data-theme="dark"] .markdown-body pre,
  html[data-theme="dark"] .markdown-body code { background: #161b22; }
  nav {
    margin-bottom: 1.5rem;
    display: flex;
    justify-content: space-between;
    align-items: center;
  }
  nav a { color: #58a6ff; text-decoration: none; }
  nav a:hover { text-decoration: underline; }
  .theme-toggle {
    background: none;
    border: none;
    cursor: pointer;
    font-size: 1.2rem;
    padding: 0.2rem;
    line-height: 1;
  }
  #content { display: none; }
</style>
</head>
<body>
<nav>
  <a href="/">&larr; All sessions</a>
  <button class="theme-toggle" onclick="toggleTheme()" title="Toggle light/dark mode">&#9788;</button>
</nav>
<div id="raw" class="markdown-body"></div>
<pre id="content">{{.Content}}</pre>
<script>
  const md = document.getElementById('content').textContent;
  document.getElementById('raw').innerHTML = marked.parse(md);
  function setTheme(theme) {
    document.documentElement.dataset.theme = theme;
    localStorage.setItem('cc-theme', theme);
    document.querySelector('.theme-toggle').textContent = theme === 'dark' ? '☼' : '☽';
    var css = document.getElementById('md-css');
    css.href = theme === 'dark'
      ? 'https://cdn.jsdelivr.net/npm/github-markdown-css@5/github-markdown-dark.min.css'
      : 'https://cdn.jsdelivr.net/npm/github-markdown-css@5/github-markdown-light.min.css';
  }
  function toggleTheme() {
    setTheme(document.documentElement.dataset.theme === 'dark' ? 'light' : 'dark');
  }
  setTheme(localStorage.getItem('cc-theme') || 'dark');
</script>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>cc-session-logs</title>
<style>
  html[data-theme="dark"] body { background: #0d1117; color: #e6edf3; }
  html[data-theme="light"] body { background: #ffffff; color: #1f2328; }
  body {
    max-width: 960px;
    margin: 0 auto;
    padding: 2rem 1rem;
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
    transition: background 0.2s, color 0.2s;
  }
  header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding-bottom: 0.5rem;
  }
  html[data-theme="dark"] header { border-bottom: 1px solid #30363d; }
  html[data-theme="light"] header { border-bottom: 1px solid #d0d7de; }
  h1 { margin: 0; }
  .theme-toggle {
    background: none;
    border: none;
    cursor: pointer;
    font-size: 1.2rem;
    padding: 0.2rem;
    line-height: 1;
  }
  a { color: #58a6ff; text-decoration: none; }
  a:hover { text-decoration: underline; }
  .session {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 0.75rem 0.5rem;
    cursor: pointer;
    border-radius: 6px;
    transition: background 0.15s;
  }
  html[data-theme="dark"] .session { border-bottom: 1px solid #21262d; }
  html[data-theme="light"] .session { border-bottom: 1px solid #d0d7de; }
  html[data-theme="dark"] .session:hover { background: #161b22; }
  html[data-theme="light"] .session:hover { background: #f6f8fa; }
  .session-name { font-family: monospace; font-size: 0.95rem; }
  .session a.row-link { color: inherit; text-decoration: none; }
  .formats { font-size: 0.8rem; opacity: 0.6; }
  .formats a { margin-left: 0.75rem; }
  .subagent { opacity: 0.7; font-size: 0.85rem; margin-left: 0.5rem; }
  .label { margin-left: 0.75rem; font-style: italic; }
  html[data-theme="dark"] .label { color: #8b949e; }
  html[data-theme="light"] .label { color: #656d76; }
  .empty { font-style: italic; }
  html[data-theme="dark"] .empty { color: #8b949e; }
  html[data-theme="light"] .empty { color: #656d76; }
</style>
</head>
<body>
<header>
  <h1>cc-session-logs</h1>
  <button class="theme-toggle" onclick="toggleTheme()" title="Toggle light/dark mode">&#9788;</button>
</header>
{{if not .Entries}}<p class="empty">No session logs found.</p>{{end}}
{{range .Entries}}<div class="session" data-href="/{{.Name}}">
  <span class="session-name"><a class="row-link" href="/{{.Name}}">{{.Date}} {{.Time}} &mdash; {{.Session}}{{if .IsSubagent}}<span class="subagent">{{.AgentType}} {{.AgentID}}</span>{{end}}{{if .Label}}<span class="label">{{.Label}}</span>{{end}}</a></span>
  <span class="formats">
    <a href="/{{.Name}}">html</a>
    <a href="/{{.Name}}.md">md</a>
  </span>
</div>
{{end}}
<script>
  function setTheme(theme) {
    document.documentElement.dataset.theme = theme;
    localStorage.setItem('cc-theme', theme);
    document.querySelector('.theme-toggle').textContent = theme === 'dark' ? '☼' : '☽';
  }
  function toggleTheme() {
    setTheme(document.documentElement.dataset.theme === 'dark' ? 'light' : 'dark');
  }
  setTheme(localStorage.getItem('cc-theme') || 'dark');
  document.querySelectorAll('.session').forEach(function(el) {
    el.addEventListener('click', function(e) {
      if (e.target.tagName === 'A') return;
      window.location = el.dataset.href;
    });
  });
</script>
</body>
</html>
`
