package handler

import "net/http"

// Viewer serve a página do simulador: um visualizador local de um
// arquivo só, sem build de front-end.
func Viewer() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(viewerPage))
	})
}

const viewerPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Simulador de ventas — Noviembre 2025</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 960px; color: #222; }
  h1 { font-size: 1.4rem; }
  .controls { display: flex; gap: 1.5rem; align-items: end; flex-wrap: wrap; margin-bottom: 1.5rem; }
  .controls label { display: block; font-size: .8rem; color: #555; margin-bottom: .25rem; }
  .kpis { display: flex; gap: 1rem; margin-bottom: 1.5rem; flex-wrap: wrap; }
  .kpi { border: 1px solid #ddd; border-radius: 8px; padding: .75rem 1.25rem; min-width: 150px; }
  .kpi .value { font-size: 1.3rem; font-weight: 600; }
  .kpi .label { font-size: .75rem; color: #777; }
  table { border-collapse: collapse; width: 100%; font-size: .85rem; }
  th, td { border-bottom: 1px solid #eee; padding: .35rem .5rem; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  tr.black-friday { background: #fff2cc; font-weight: 600; }
  #chart { width: 100%; height: 220px; margin-bottom: 1rem; }
  .error { color: #b00020; margin: 1rem 0; }
</style>
</head>
<body>
<h1>Simulador de descuentos — previsión de noviembre 2025</h1>

<div class="controls">
  <div>
    <label for="product">Producto</label>
    <select id="product"></select>
  </div>
  <div>
    <label for="discount">Descuento: <span id="discount-value">0</span>%</label>
    <input type="range" id="discount" min="-50" max="50" step="5" value="0">
  </div>
  <div>
    <label for="scenario">Competencia</label>
    <select id="scenario">
      <option value="-5">Competencia -5%</option>
      <option value="0" selected>Precios actuales</option>
      <option value="5">Competencia +5%</option>
    </select>
  </div>
  <div>
    <button id="run">Simular</button>
  </div>
</div>

<div class="kpis" id="kpis"></div>
<canvas id="chart" width="920" height="220"></canvas>
<div class="error" id="error"></div>
<table>
  <thead>
    <tr><th>Fecha</th><th>Día</th><th>Precio</th><th>Descuento %</th><th>Unidades</th><th>Ingresos</th></tr>
  </thead>
  <tbody id="rows"></tbody>
</table>

<script>
const fmt = new Intl.NumberFormat('es-ES', { maximumFractionDigits: 1 });
const eur = new Intl.NumberFormat('es-ES', { style: 'currency', currency: 'EUR' });

async function loadProducts() {
  const res = await fetch('/v1/products');
  if (!res.ok) throw new Error('No se pudieron cargar los productos');
  const products = await res.json();
  const select = document.getElementById('product');
  select.innerHTML = '';
  for (const p of products) {
    const opt = document.createElement('option');
    opt.value = p.name;
    opt.textContent = p.name + ' (' + p.category + ')';
    select.appendChild(opt);
  }
}

function renderKpis(summary) {
  const kpis = [
    { label: 'Unidades previstas', value: fmt.format(summary.total_units) },
    { label: 'Ingresos previstos', value: eur.format(summary.total_revenue) },
    { label: 'Precio medio', value: eur.format(summary.average_price) },
    { label: 'Descuento medio', value: fmt.format(summary.average_discount_pct) + '%' },
  ];
  document.getElementById('kpis').innerHTML = kpis.map(k =>
    '<div class="kpi"><div class="value">' + k.value + '</div><div class="label">' + k.label + '</div></div>'
  ).join('');
}

function renderChart(days) {
  const canvas = document.getElementById('chart');
  const ctx = canvas.getContext('2d');
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  const max = Math.max(...days.map(d => d.predicted_units), 1);
  const barWidth = canvas.width / days.length;
  days.forEach((d, i) => {
    const h = (d.predicted_units / max) * (canvas.height - 20);
    ctx.fillStyle = d.is_black_friday ? '#e6a817' : '#4472c4';
    ctx.fillRect(i * barWidth + 2, canvas.height - h, barWidth - 4, h);
  });
}

function renderRows(days) {
  document.getElementById('rows').innerHTML = days.map(d =>
    '<tr class="' + (d.is_black_friday ? 'black-friday' : '') + '">' +
    '<td>' + d.date + '</td>' +
    '<td>' + d.weekday + '</td>' +
    '<td>' + eur.format(d.sell_price) + '</td>' +
    '<td>' + fmt.format(d.discount_pct) + '</td>' +
    '<td>' + fmt.format(d.predicted_units) + '</td>' +
    '<td>' + eur.format(d.revenue) + '</td>' +
    '</tr>'
  ).join('');
}

async function simulate() {
  document.getElementById('error').textContent = '';
  const body = {
    product: document.getElementById('product').value,
    discount_pct: Number(document.getElementById('discount').value),
    competitor_adjustment_pct: Number(document.getElementById('scenario').value),
  };
  const res = await fetch('/v1/simulations', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(body),
  });
  if (!res.ok) {
    const err = await res.json().catch(() => ({}));
    document.getElementById('error').textContent = err.message || 'Error en la simulación';
    return;
  }
  const result = await res.json();
  renderKpis(result.summary);
  renderChart(result.days);
  renderRows(result.days);
}

document.getElementById('discount').addEventListener('input', e => {
  document.getElementById('discount-value').textContent = e.target.value;
});
document.getElementById('run').addEventListener('click', simulate);

loadProducts().then(simulate).catch(e => {
  document.getElementById('error').textContent = e.message;
});
</script>
</body>
</html>
`
