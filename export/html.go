package export

import (
	"html/template"
	"io"

	"github.com/rustyeddy/mcsim/gbm"
)

// maxChartPaths caps how many trajectories a chart draws. Plotting every path
// of a large ensemble is unreadable and slow; 20 is enough to show the fan.
const maxChartPaths = 20

type htmlData struct {
	Params   gbm.Params
	CSVFile  string
	MaxPaths int
}

// WriteHTMLReport writes a self-contained Chart.js page that fetches the
// paths CSV (csvFile, relative to the page) and draws up to 20 trajectories,
// with the run parameters summarized above the chart. Open the file next to
// the CSV in a browser.
func WriteHTMLReport(w io.Writer, p gbm.Params, csvFile string) error {
	return htmlTmpl.Execute(w, htmlData{
		Params:   p,
		CSVFile:  csvFile,
		MaxPaths: maxChartPaths,
	})
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Monte Carlo Price Simulation</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .container { max-width: 1200px; margin: 0 auto; }
        .chart-container { width: 100%; height: 600px; margin-top: 20px; }
        h1, h2 { color: #333; }
        .params { background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Monte Carlo Price Simulation</h1>

        <div class="params">
            <h2>Simulation Parameters</h2>
            <p><strong>Initial Price:</strong> ${{.Params.InitialPrice}}</p>
            <p><strong>Expected Annual Return:</strong> {{.Params.Drift}}</p>
            <p><strong>Annual Volatility:</strong> {{.Params.Volatility}}</p>
            <p><strong>Time Period:</strong> {{.Params.Horizon}} years</p>
            <p><strong>Number of Paths:</strong> {{.Params.Paths}}</p>
        </div>

        <div class="chart-container">
            <canvas id="priceChart"></canvas>
        </div>
    </div>

    <script>
        async function loadCSV(url) {
            const response = await fetch(url);
            const data = await response.text();
            return data.trim().split('\n').map(row => row.split(','));
        }

        function randomColor() {
            const letters = '0123456789ABCDEF';
            let color = '#';
            for (let i = 0; i < 6; i++) {
                color += letters[Math.floor(Math.random() * 16)];
            }
            return color;
        }

        async function createChart() {
            try {
                const rows = await loadCSV({{.CSVFile}});
                const timePoints = rows[0].slice(1).map(parseFloat);

                const show = Math.min(rows.length - 1, {{.MaxPaths}});
                const datasets = [];
                for (let i = 1; i <= show; i++) {
                    datasets.push({
                        label: 'Path ' + i,
                        data: rows[i].slice(1).map(parseFloat),
                        borderColor: randomColor(),
                        backgroundColor: 'transparent',
                        borderWidth: 1,
                        pointRadius: 0
                    });
                }

                const ctx = document.getElementById('priceChart').getContext('2d');
                new Chart(ctx, {
                    type: 'line',
                    data: { labels: timePoints, datasets: datasets },
                    options: {
                        responsive: true,
                        maintainAspectRatio: false,
                        plugins: {
                            title: { display: true, text: 'Simulated Price Paths', font: { size: 16 } },
                            legend: { display: false },
                            tooltip: { mode: 'index', intersect: false }
                        },
                        scales: {
                            x: { title: { display: true, text: 'Time (years)' } },
                            y: { title: { display: true, text: 'Price ($)' } }
                        }
                    }
                });
            } catch (err) {
                console.error('Error loading data:', err);
                document.body.innerHTML += '<p style="color: red">Error loading data: ' + err.message + '</p>';
            }
        }

        window.onload = createChart;
    </script>
</body>
</html>
`))
