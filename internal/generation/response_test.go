package generation_test

import (
	"testing"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDashboardJSON = `{
  "title": "SaaS Sales 2024",
  "summary": "Revenue grew steadily through the year.",
  "metrics": [
    {"label": "ARR", "value": "$4.2M", "trend": "up", "percentage": "+12%"},
    {"label": "Churn", "value": "2.1%", "trend": "down"},
    {"label": "Seats", "value": "18,400", "trend": "neutral"}
  ],
  "charts": [
    {
      "title": "Monthly revenue",
      "type": "bar",
      "xAxisKey": "name",
      "dataKey": "value",
      "data": [{"name": "Jan", "value": 310}, {"name": "Feb", "value": 0, "secondaryValue": 12.5}]
    },
    {
      "title": "Active users",
      "type": "area",
      "xAxisKey": "name",
      "dataKey": "value",
      "data": [{"name": "Q1", "value": 1200}]
    }
  ]
}`

func TestParseDashboard_Valid(t *testing.T) {
	t.Parallel()

	spec, err := generation.ParseDashboard(validDashboardJSON, prompt.DashboardSchema())

	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "SaaS Sales 2024", spec.Title)
	assert.Len(t, spec.Metrics, 3)
	assert.Len(t, spec.Charts, 2)
	assert.Equal(t, domain.TrendUp, spec.Metrics[0].Trend)
	assert.Equal(t, "+12%", spec.Metrics[0].Percentage)
	assert.Equal(t, domain.ChartTypeBar, spec.Charts[0].Type)
	assert.Equal(t, "name", spec.Charts[0].XAxisKey)
	require.Len(t, spec.Charts[0].Data, 2)
	assert.Nil(t, spec.Charts[0].Data[0].SecondaryValue)
	require.NotNil(t, spec.Charts[0].Data[1].SecondaryValue)
	assert.InDelta(t, 12.5, *spec.Charts[0].Data[1].SecondaryValue, 1e-9)
	assert.Zero(t, spec.Charts[0].Data[1].Value, "a zero value is present, not missing")
}

func TestParseDashboard_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{
			name:  "not json",
			input: "{not json",
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "top level array",
			input: `[]`,
		},
		{
			name:     "missing summary",
			input:    `{"title":"t","metrics":[],"charts":[]}`,
			wantPath: "summary",
		},
		{
			name:     "null title",
			input:    `{"title":null,"summary":"s","metrics":[],"charts":[]}`,
			wantPath: "title",
		},
		{
			name:     "metric missing trend",
			input:    `{"title":"t","summary":"s","metrics":[{"label":"a","value":"1"}],"charts":[]}`,
			wantPath: "metrics.0.trend",
		},
		{
			name: "chart point missing value",
			input: `{"title":"t","summary":"s","metrics":[],"charts":[
				{"title":"c","type":"bar","xAxisKey":"name","dataKey":"value","data":[{"name":"x","value":1},{"name":"y"}]}]}`,
			wantPath: "charts.0.data.1.value",
		},
		{
			name:  "unknown trend",
			input: `{"title":"t","summary":"s","metrics":[{"label":"a","value":"1","trend":"sideways"}],"charts":[]}`,
		},
		{
			name: "unknown chart type",
			input: `{"title":"t","summary":"s","metrics":[],"charts":[
				{"title":"c","type":"pie","xAxisKey":"name","dataKey":"value","data":[]}]}`,
		},
		{
			name:  "wrong value type",
			input: `{"title":"t","summary":"s","metrics":"none","charts":[]}`,
		},
		{
			name:  "empty trend",
			input: `{"title":"t","summary":"s","metrics":[{"label":"a","value":"1","trend":""}],"charts":[]}`,
		},
		{
			name: "empty chart type",
			input: `{"title":"t","summary":"s","metrics":[],"charts":[
				{"title":"c","type":"","xAxisKey":"name","dataKey":"value","data":[]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := generation.ParseDashboard(tt.input, prompt.DashboardSchema())

			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrMalformedResponse)
			assert.Nil(t, spec, "no partial dashboard may be returned")
			if tt.wantPath != "" {
				assert.Contains(t, err.Error(), tt.wantPath)
			}
		})
	}
}

func TestParseDashboard_NilSchemaStillValidatesEnums(t *testing.T) {
	t.Parallel()

	_, err := generation.ParseDashboard(
		`{"title":"t","summary":"s","metrics":[{"label":"a","value":"1","trend":"sideways"}],"charts":[]}`,
		nil,
	)

	assert.ErrorIs(t, err, generation.ErrMalformedResponse)
}

func TestParseDashboard_EmptyStringsArePresent(t *testing.T) {
	t.Parallel()

	spec, err := generation.ParseDashboard(
		`{"title":"","summary":"","metrics":[{"label":"","value":"","trend":"neutral"}],"charts":[]}`,
		prompt.DashboardSchema(),
	)

	require.NoError(t, err, "present but empty strings satisfy the schema")
	assert.Empty(t, spec.Title)
	assert.Empty(t, spec.Summary)
	require.Len(t, spec.Metrics, 1)
	assert.Equal(t, domain.TrendNeutral, spec.Metrics[0].Trend)
}
