package prompt

import (
	"github.com/phrazzld/gemini-studio/internal/domain"
	"google.golang.org/genai"
)

// DashboardSchema returns the response schema for structured dashboard
// generation. It mirrors domain.DashboardSpec and is the contract the
// response validator checks required fields against. A new value is built
// on every call so callers may not mutate a shared schema.
func DashboardSchema() *genai.Schema {
	point := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           {Type: genai.TypeString},
			"value":          {Type: genai.TypeNumber},
			"secondaryValue": {Type: genai.TypeNumber},
		},
		Required: []string{"name", "value"},
	}

	metric := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"label":      {Type: genai.TypeString},
			"value":      {Type: genai.TypeString},
			"trend":      {Type: genai.TypeString, Enum: enumStrings(domain.Trends)},
			"percentage": {Type: genai.TypeString},
		},
		Required: []string{"label", "value", "trend"},
	}

	chart := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"type":  {Type: genai.TypeString, Enum: enumStrings(domain.ChartTypes)},
			"xAxisKey": {
				Type:        genai.TypeString,
				Description: "Key for X axis data (usually name/date)",
			},
			"dataKey": {
				Type:        genai.TypeString,
				Description: "Key for Y axis data (value)",
			},
			"data": {Type: genai.TypeArray, Items: point},
		},
		Required:         []string{"title", "type", "data", "xAxisKey", "dataKey"},
		PropertyOrdering: []string{"title", "type", "xAxisKey", "dataKey", "data"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":   {Type: genai.TypeString, Description: "Dashboard title"},
			"summary": {Type: genai.TypeString, Description: "Brief executive summary of the data"},
			"metrics": {Type: genai.TypeArray, Items: metric},
			"charts":  {Type: genai.TypeArray, Items: chart},
		},
		Required:         []string{"title", "summary", "metrics", "charts"},
		PropertyOrdering: []string{"title", "summary", "metrics", "charts"},
	}
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
