package api

// viewTemplate is the single viewer page: item selector on top, structured
// record on the left, source document page on the right.
const viewTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; padding: 0.6rem; color: #111; }
  .topbar { margin-bottom: 0.5rem; }
  .topbar select { font-size: 1rem; padding: 4px 8px; max-width: 32rem; }
  .columns { display: flex; gap: 12px; align-items: flex-start; }
  .panel { overflow-y: auto; max-height: 92vh; }
  .panel-left { flex: 0.78; }
  .panel-right { flex: 1.2; }
  .divider { width: 1px; background: #e5e7eb; align-self: stretch; }
  h2 { font-size: 1.1rem; margin: 0.2rem 0 0.4rem 0; }
  .error { color: #b00020; border: 1px solid #f1c0c6; background: #fdf2f3; border-radius: 8px; padding: 8px 10px; margin: 6px 0; }
  .warning { color: #7a5a00; border: 1px solid #f0e1b0; background: #fdf8e8; border-radius: 8px; padding: 8px 10px; margin: 6px 0; }

  .dense-line { margin: 0.04rem 0; line-height: 1.2; font-size: 0.96rem; }
  .dense-key { font-weight: 400; }
  .dense-value { font-weight: 700; }
  .dense-value-regular { font-weight: 400; display: inline-block; }
  .dense-value-regular p { margin: 0.1rem 0; }
  .dense-subtitle { font-weight: 700; margin: 0.14rem 0; line-height: 1.1; }
  .dense-caption { color: #6b7280; font-size: 0.85rem; margin: 0.1rem 0; }
  .dense-bullet { margin: 0.04rem 0 0.04rem 1rem; }
  .dense-bullet::before { content: "\2022\00a0"; }
  .dense-rule { border: none; border-top: 1px solid #e5e7eb; margin: 6px 0 8px 0; }
  .block { border: 1px solid #d9d9d9; border-radius: 10px; padding: 8px 10px; margin: 6px 0; background: #fafafa; }
  .block-soft { background: #f5f8ff; }
  .block-title { font-weight: 700; margin-bottom: 4px; line-height: 1.05; }
  .chip-label { font-weight: 700; }
  .chip { color: #111; padding: 4px 8px; border-radius: 6px; margin: 0 6px 6px 0; display: inline-block; }

  .pager { display: flex; gap: 8px; margin: 6px 0; }
  .pager a { flex: 1; text-align: center; padding: 6px 0; border: 1px solid #d9d9d9; border-radius: 8px; text-decoration: none; color: #111; background: #fafafa; }
  .pager-caption { color: #6b7280; font-size: 0.85rem; margin: 4px 0; }
  .page-image { width: 100%; border: 1px solid #e5e7eb; }
  .page-caption { color: #6b7280; font-size: 0.85rem; margin: 4px 0; }
  .source-text { white-space: pre-wrap; font-size: 0.92rem; line-height: 1.3; }
</style>
</head>
<body>
{{if .Items}}
<div class="topbar">
  <select onchange="location = this.value;">
    {{range .Items}}<option value="{{.URL}}"{{if .Selected}} selected{{end}}>{{.Stem}}</option>{{end}}
  </select>
</div>
{{end}}
<div class="columns">
  <div class="panel panel-left">
    <h2>Результат</h2>
    {{if .RecordErr}}<div class="error">{{.RecordErr}}</div>{{end}}
    {{.Record}}
  </div>
  <div class="divider"></div>
  <div class="panel panel-right">
    <h2>Оригинал</h2>
    {{with .Source}}
      {{if eq .Kind "pdf"}}
        <div class="pager-caption">Страница {{.Page}} из {{.Total}}</div>
        <div class="pager">
          <a href="{{.PrevURL}}">&larr; Назад</a>
          <a href="{{.NextURL}}">Вперед &rarr;</a>
        </div>
        {{if .ImageOK}}
          <img class="page-image" src="{{.ImageURL}}" alt="{{.FileName}}, страница {{.Page}}">
          <div class="page-caption">{{.FileName}}, страница {{.Page}}/{{.Total}}</div>
          <div class="pager">
            <a href="{{.PrevURL}}">&larr; Назад</a>
            <a href="{{.NextURL}}">Вперед &rarr;</a>
          </div>
        {{else}}
          <div class="warning">{{.Message}} Открываю fallback-ссылку.</div>
          <a href="{{.FileURL}}">Открыть PDF-файл</a>
        {{end}}
      {{else if eq .Kind "docx"}}
        {{if .Message}}
          <div class="warning">{{.Message}}</div>
          <a href="{{.FileURL}}">Открыть файл</a>
        {{else}}
          <div class="page-caption">{{.FileName}}</div>
          <div class="source-text">{{.Text}}</div>
        {{end}}
      {{else}}
        <div class="error">{{.Message}}</div>
      {{end}}
    {{end}}
  </div>
</div>
</body>
</html>
`
