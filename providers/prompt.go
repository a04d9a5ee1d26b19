package providers

import "fmt"

// Disclaimer is the mandatory closing sentence of every answer, regardless
// of which provider produced it.
const Disclaimer = "This information is for educational purposes only and does not replace professional medical advice."

// geminiSystemPrompt is the fixed instruction template for the primary
// provider. It is identical across all requests.
var geminiSystemPrompt = fmt.Sprintf(`You are a medical educator helping students prepare for licensing exams.

RULES:
- Answer using general, textbook-level medical knowledge only.
- NEVER give personal medical advice, diagnoses, or dosing for an individual.
- Include the mechanism or pathophysiology when it is relevant to the question.
- Keep the answer under 250 words.
- End the answer with exactly this sentence: "%s"`, Disclaimer)

// instructPrompt wraps a question in the Mistral instruction format used by
// the fallback provider.
func instructPrompt(question string) string {
	return fmt.Sprintf(`<s>[INST] You are a medical educator for exam preparation. Answer the following question with general medical knowledge only, include the mechanism when relevant, and do not give personal medical advice.

Question: %s [/INST]`, question)
}
