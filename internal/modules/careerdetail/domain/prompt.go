package domain

import "fmt"

const promptTemplate = `Provide a detailed overview for a career path related to %q.
The overview should be concise, professional, and encouraging for a learner in India.
Structure the response in three distinct sections:

1.  **Career Description:** A brief paragraph explaining what professionals in this field do.
2.  **Key Skills:** A bulleted list of 5-7 essential skills required for this role.
3.  **Future Prospects:** A short paragraph on the job market outlook and potential growth in India for this career.

Format the entire output as a single block of text, using markdown for headings (e.g., "**Career Description**") and bullet points (e.g., "- Skill 1").
Do not use markdown code blocks.`

// Prompt builds the generator prompt. Only the program name varies.
func Prompt(programName string) string {
	return fmt.Sprintf(promptTemplate, programName)
}
