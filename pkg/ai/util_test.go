package ai

import (
	"testing"
)

func TestUnmarshalFlexible_ObjectVariants(t *testing.T) {
	type annotation struct {
		Summary  string  `json:"summary"`
		Severity float64 `json:"severity,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  annotation
	}{
		{
			name:  "valid json object",
			input: `{"summary":"Strike at plant"}`,
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "unquoted key and single quotes",
			input: `{summary: 'Strike at plant'}`,
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "trailing comma",
			input: `{"summary":"Strike at plant",}`,
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "missing endbracket",
			input: `{"summary":"Strike at plant`,
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "stringified invalid json object",
			input: `"{summary: 'Strike at plant'}"`,
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"summary\": \"Strike at plant\"\n}\n",
			want:  annotation{Summary: "Strike at plant"},
		},
		{
			name:  "duplicate leading brace no newlines",
			input: `{ { "summary": "Strike at plant" }`,
			want:  annotation{Summary: "Strike at plant"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got annotation
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Summary != tc.want.Summary || got.Severity != tc.want.Severity {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexible_FullAnnotation(t *testing.T) {
	type annotation struct {
		Summary        string   `json:"summary"`
		Sentiment      string   `json:"sentiment"`
		SentimentScore float64  `json:"sentiment_score"`
		Entities       []string `json:"entities"`
		Severity       float64  `json:"severity"`
	}

	tests := []struct {
		name  string
		input string
		want  annotation
	}{
		{
			name:  "stringified annotation",
			input: `"{ \"summary\": \"Earthquake halts production\", \"sentiment\": \"negative\", \"sentiment_score\": 0.9, \"entities\": [ \"Bosch\", \"Bosch China\" ], \"severity\": 0.8 }"`,
			want: annotation{
				Summary:        "Earthquake halts production",
				Sentiment:      "negative",
				SentimentScore: 0.9,
				Entities:       []string{"Bosch", "Bosch China"},
				Severity:       0.8,
			},
		},
		{
			name:  "stringified with newlines",
			input: `"{\n  \"summary\": \"Earthquake halts production\",\n  \"sentiment\": \"negative\",\n  \"sentiment_score\": 0.9,\n  \"entities\": [\"Bosch\"],\n  \"severity\": 0.8\n  }\n"`,
			want: annotation{
				Summary:        "Earthquake halts production",
				Sentiment:      "negative",
				SentimentScore: 0.9,
				Entities:       []string{"Bosch"},
				Severity:       0.8,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got annotation
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Summary != tc.want.Summary || got.Sentiment != tc.want.Sentiment {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
			if len(got.Entities) != len(tc.want.Entities) {
				t.Fatalf("UnmarshalFlexible() entities length got = %d, want %d", len(got.Entities), len(tc.want.Entities))
			}
			for i := range got.Entities {
				if got.Entities[i] != tc.want.Entities[i] {
					t.Fatalf("UnmarshalFlexible() entities[%d] = %q, want %q", i, got.Entities[i], tc.want.Entities[i])
				}
			}
		})
	}
}

func TestUnmarshalFlexible_ArrayVariants(t *testing.T) {
	type annotation struct {
		Summary string `json:"summary"`
	}

	input := `[{summary:'A'},{summary:'B',}]`
	var got []annotation
	if err := UnmarshalFlexible(input, &got); err != nil {
		t.Fatalf("UnmarshalFlexible() error = %v", err)
	}
	if len(got) != 2 || got[0].Summary != "A" || got[1].Summary != "B" {
		t.Fatalf("UnmarshalFlexible() got = %+v, want two annotations A,B", got)
	}
}

func TestUnmarshalFlexible_Unrecoverable(t *testing.T) {
	type annotation struct {
		Summary string `json:"summary"`
	}

	var got annotation
	if err := UnmarshalFlexible("hello", &got); err == nil {
		t.Fatalf("UnmarshalFlexible() expected error for unrecoverable input")
	}
}
