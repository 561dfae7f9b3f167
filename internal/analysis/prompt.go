package analysis

import "fmt"

const promptTemplate = `Act as an expert medical AI assistant for a doctor.
Analyze the following patient data:

Symptoms: %s
Medical History: %s
Vitals: %s

Provide a structured response including:
1. Potential Diagnosis (Top 3 possibilities with probabilities)
2. Recommended Tests
3. Suggested Treatment Plan (Generic medicines)
4. Risk Alerts (e.g., High BP, Drug interactions)

Keep the tone professional, concise, and clinical. Disclaimer: This is AI assistance, not a final medical verdict.`

// BuildPrompt embeds the three free-text fields into the clinical prompt.
// The requested sections are advisory; the reply is never parsed.
func BuildPrompt(symptoms, history, vitals string) string {
	return fmt.Sprintf(promptTemplate, symptoms, history, vitals)
}
