package domain

type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// Questions is the fixed aptitude check shown on step 3.
var Questions = [3]Question{
	{
		Prompt:  "Which number should come next in the series? 1, 4, 9, 16, __",
		Options: []string{"20", "25", "30", "36"},
		Answer:  "25",
	},
	{
		Prompt:  "Choose the word that is most nearly opposite in meaning to 'ABUNDANT'.",
		Options: []string{"Plentiful", "Scarce", "Ample", "Copious"},
		Answer:  "Scarce",
	},
	{
		Prompt:  "A man buys an article for Rs. 27.50 and sells it for Rs. 28.60. What is his gain percent?",
		Options: []string{"2.5%", "3%", "4%", "5%"},
		Answer:  "4%",
	},
}

func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
