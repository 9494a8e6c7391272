package domain

// FetchState espelha o estado do fetcher do cliente; quem chama é o dono do estado
type FetchState string

const (
	FetchStateIdle       FetchState = "idle"
	FetchStateLoading    FetchState = "loading"
	FetchStateSubmitting FetchState = "submitting"
	FetchStateLoaded     FetchState = "loaded"
)

// ParseFetchState converte o valor recebido, assumindo idle para valores desconhecidos
func ParseFetchState(s string) FetchState {
	switch FetchState(s) {
	case FetchStateLoading, FetchStateSubmitting, FetchStateLoaded:
		return FetchState(s)
	default:
		return FetchStateIdle
	}
}

type FetcherStatus struct {
	State  FetchState `json:"state"`
	Method string     `json:"method,omitempty"`
}

type DisplayMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DashboardAction struct {
	Label   string `json:"label"`
	Loading bool   `json:"loading"`
	// SessionToken segue no formulário da action; nunca vai para o JSON
	SessionToken string `json:"-"`
}

type DashboardView struct {
	Title            string          `json:"title"`
	Action           DashboardAction `json:"action"`
	Metrics          []DisplayMetric `json:"metrics"`
	BreakdownTitle   string          `json:"breakdownTitle"`
	Breakdown        []DisplayMetric `json:"breakdown"`
	CreatedProductID string          `json:"createdProductId,omitempty"`
	Toast            string          `json:"toast,omitempty"`
}
