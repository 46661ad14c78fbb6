package domain

// Trend is the direction indicator attached to a metric.
type Trend string

// Allowed trend values.
const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Trends lists every allowed trend in declaration order.
var Trends = []Trend{TrendUp, TrendDown, TrendNeutral}

// ChartType selects how a chart's data points are drawn.
type ChartType string

// Allowed chart types.
const (
	ChartTypeBar  ChartType = "bar"
	ChartTypeLine ChartType = "line"
	ChartTypeArea ChartType = "area"
)

// ChartTypes lists every allowed chart type in declaration order.
var ChartTypes = []ChartType{ChartTypeBar, ChartTypeLine, ChartTypeArea}

// Expected counts requested from the model for every dashboard.
const (
	DashboardMetricCount = 3
	DashboardChartCount  = 2
)

// DashboardSpec is a generated bundle of a title, summary, metrics and
// chart specifications. It is only ever produced whole, from a successful
// structured-generation call.
type DashboardSpec struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Metrics []Metric `json:"metrics" validate:"required,dive"`
	Charts  []Chart  `json:"charts"  validate:"required,dive"`
}

// Metric is a single headline figure.
type Metric struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Trend      Trend  `json:"trend"                validate:"oneof=up down neutral"`
	Percentage string `json:"percentage,omitempty"`
}

// Chart describes one chart. XAxisKey and DataKey name the ChartPoint
// fields the renderer reads.
type Chart struct {
	Title    string       `json:"title"`
	Type     ChartType    `json:"type"     validate:"required,oneof=bar line area"`
	XAxisKey string       `json:"xAxisKey"`
	DataKey  string       `json:"dataKey"`
	Data     []ChartPoint `json:"data"     validate:"dive"`
}

// ChartPoint is a single data point of a chart.
type ChartPoint struct {
	Name           string   `json:"name"`
	Value          float64  `json:"value"`
	SecondaryValue *float64 `json:"secondaryValue,omitempty"`
}
