package dashboard

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

const actionPath = "/app/sample-products"

// Render devolve a página completa; todo texto dinâmico passa por templ.EscapeString
func Render(view domain.DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+templ.EscapeString(view.Title)+`</title></head><body>`); err != nil {
			return err
		}

		if err := header(view).Render(ctx, w); err != nil {
			return err
		}
		if err := metricsCard(view.Metrics).Render(ctx, w); err != nil {
			return err
		}
		if err := breakdownCard(view.BreakdownTitle, view.Breakdown).Render(ctx, w); err != nil {
			return err
		}
		if view.Toast != "" {
			if err := toast(view.Toast, view.CreatedProductID).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func header(view domain.DashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		busy := ""
		if view.Action.Loading {
			busy = ` aria-busy="true" disabled`
		}

		token := ""
		if view.Action.SessionToken != "" {
			token = `<input type="hidden" name="` + domain.SessionTokenParam + `" value="` + templ.EscapeString(view.Action.SessionToken) + `">`
		}

		_, err := io.WriteString(w, `<header class="title-bar"><h1>`+templ.EscapeString(view.Title)+`</h1>`+
			`<form method="post" action="`+actionPath+`">`+token+`<button type="submit" class="primary"`+busy+`>`+
			templ.EscapeString(view.Action.Label)+`</button></form></header>`)
		return err
	})
}

func metricsCard(metrics []domain.DisplayMetric) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="card metrics">`); err != nil {
			return err
		}
		for _, m := range metrics {
			_, err := io.WriteString(w, `<div class="metric"><span class="subdued">`+templ.EscapeString(m.Label)+
				`</span><h3>`+templ.EscapeString(m.Value)+`</h3></div>`)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func breakdownCard(title string, rows []domain.DisplayMetric) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="card breakdown"><h2>`+templ.EscapeString(title)+`</h2><table>`); err != nil {
			return err
		}
		for _, row := range rows {
			_, err := io.WriteString(w, `<tr><td>`+templ.EscapeString(row.Label)+`</td><td>`+templ.EscapeString(row.Value)+`</td></tr>`)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}

func toast(message, productID string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="toast" role="status" data-product-id="`+templ.EscapeString(productID)+`">`+
			templ.EscapeString(message)+`</div>`)
		return err
	})
}
