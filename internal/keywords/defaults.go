// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

// DefaultRules is the built-in AI/NLP keyword table. Acronyms match
// case-sensitively; phrase rules are case-insensitive. The bare "AI" rule
// carries a context clause so mentions far from any talk of models do not
// count.
var DefaultRules = []Rule{
	// LLM
	{Label: "Large Language Model (LLM)", Expr: `\bLLMs?\b`, CaseSensitive: true},
	{Label: "Large Language Model (LLM)", Expr: `\blarge language models?\b`},

	// GPT
	{Label: "Generative Pre-trained Transformer (GPT)", Expr: `\bGPT\b`, CaseSensitive: true},
	{Label: "Generative Pre-trained Transformer (GPT)", Expr: `\bgenerative pre-trained transformer\b`},

	// BERT family
	{Label: "BERT", Expr: `\bBERT\b`, CaseSensitive: true},
	{Label: "RoBERTa", Expr: `\bRoBERTa\b`, CaseSensitive: true},
	{Label: "ALBERT", Expr: `\bALBERT\b`, CaseSensitive: true},
	{Label: "DistilBERT", Expr: `\bDistilBERT\b`, CaseSensitive: true},

	// LSTM
	{Label: "Long Short-term Memory (LSTM)", Expr: `\bLSTM\b`, CaseSensitive: true},
	{Label: "Long Short-term Memory (LSTM)", Expr: `\blong short-term memory\b`},

	// Language model (general)
	{Label: "Language model", Expr: `\blanguage models?\b`},

	// Transformer terms
	{Label: "Transformer", Expr: `\btransformers?\b`},
	{Label: "Encoder", Expr: `\bencoders?\b`},
	{Label: "Decoder", Expr: `\bdecoders?\b`},

	// AI. The bare acronym needs "model(s)" nearby to keep false positives
	// out of social-science prose.
	{Label: "Artificial intelligence", Expr: `\bartificial intelligence\b`},
	{Label: "Artificial intelligence", Expr: `\bAI\b`, Near: `\bmodels?\b`, Window: 10, CaseSensitive: true},

	// Classic ML
	{Label: "Machine learning", Expr: `\bmachine learning\b`},
	{Label: "Classifier", Expr: `\bclassifiers?\b`},
	{Label: "Training data", Expr: `\btraining data\b`},
	{Label: "Support vector machine (SVM)", Expr: `\bsupport vector machines?\b`},

	// Neural networks
	{Label: "Neural network", Expr: `\bneural networks?\b`},
	{Label: "Artificial neural network", Expr: `\bartificial neural networks?\b`},
}

// DefaultPatterns compiles DefaultRules. The table is static, so a compile
// failure is a programming error.
func DefaultPatterns() []Pattern {
	patterns, err := Compile(DefaultRules)
	if err != nil {
		panic("keywords: built-in rules failed to compile: " + err.Error())
	}
	return patterns
}
