package ai

// AnalyzePrompt instructs the model to extract a risk annotation from one
// news article. The model must answer with strict JSON matching the
// five-field annotation schema; the extractor enforces the schema again on
// its side and falls back deterministically when the output is unusable.
const AnalyzePrompt = `
# Task Context
You are an assistant that analyzes supply-chain news for risk monitoring. You will be provided with the text of one news article.

# Detailed Task Description & Rules
Extract the following from the news text:
- summary: a short factual summary of the article (string)
- sentiment: the overall tone, one of "positive", "neutral", "negative"
- sentiment_score: confidence of the sentiment, between 0 and 1
- entities: names of companies or suppliers mentioned in the text
- severity: how severe the described event is for supply-chain operations, between 0 and 1 (0 = no impact, 1 = catastrophic disruption)

# Output Formatting
You MUST respond ONLY in valid JSON. No extra text. No explanation.
`

// BriefPrompt instructs the model to write a short prose briefing from a
// supplier's stored graph state. Plain text, no structured output.
const BriefPrompt = `
# Task Context
You are an assistant that writes risk briefings for supply-chain analysts. You will be provided with the stored state of one supplier: its attributes, products, risk scores and recent risk events.

# Detailed Task Description & Rules
Write a short briefing (at most one paragraph) that summarizes the supplier's current risk situation. Ground every statement in the provided data; do not invent events or numbers. Mention the current risk score and the most severe recent events, if any.

# Output Formatting
Respond with plain prose only. No headings, no lists, no JSON.
`
