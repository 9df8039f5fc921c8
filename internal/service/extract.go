package service

import (
	"regexp"
	"strings"
)

const (
	// DefaultRecipeName is used when no name rule matches the generated text.
	DefaultRecipeName = "Incorrect Recipe"
	// DefaultVisualizationPrompt is used when the generated text carries no
	// labeled visualization block.
	DefaultVisualizationPrompt = "Default visualization prompt based on recipe"
)

// ExtractedRecipe is the structured form of the model's free-text output.
type ExtractedRecipe struct {
	Name                string
	Body                string
	VisualizationPrompt string
	VisualizationFound  bool
}

// failurePhrases classify a generated response as a refusal. Matching is
// case-insensitive substring containment, so a legitimate recipe that
// happens to contain one of these phrases (for example "due to" inside an
// instruction step) is also classified as a refusal. That imprecision is
// accepted; see DESIGN.md.
var failurePhrases = []string{
	"unable to generate",
	"cannot be reconciled",
	"impossible to create",
	"failed to create",
	"cannot generate",
	"unable to produce",
	"error generating",
	"failed to produce",
	"due to",
	"because of",
	"as a result of",
	"due to the constraints",
	"because of the restrictions",
	"insufficient ingredients",
	"lack of required ingredients",
	"unable to comply with the dietary restrictions",
	"allergy constraints",
	"i'm sorry",
	"unfortunately",
	"regrettably",
	"apologies",
	"please note",
	"note that",
	"take note",
	"consider using different ingredients",
	"try adjusting",
	"you might want to",
	"please try again",
	"check the ingredients",
	"reevaluate the constraints",
	"you can modify",
	"recipe not possible",
	"unable to proceed",
	"unable to fulfill the request",
	"cannot comply",
	"cannot accommodate",
	"recipe generation unsuccessful",
	"unable to formulate",
	"request cannot be completed",
	"unable to create",
	"unable to craft",
	"insufficient viable ingredients",
	"restrictions too limiting",
	"constraints not met",
	"does not meet criteria",
	"unable to meet requirements",
	"does not adhere to guidelines",
	"unable to satisfy the constraints",
	"cannot accommodate the given constraints",
	"recipe creation halted",
	"unable to generate a feasible recipe",
	"unable to proceed with the given inputs",
	"combination of ingredients not workable",
	"unable to generate under given restrictions",
	"recipe creation not possible with current inputs",
	"recipe cannot be constructed",
	"unable to construct a recipe",
	"recipe formulation failed",
	"it is not possible to create",
	"unable to provide a suitable recipe",
}

// namePatterns are tried in order against the generated text; the first
// match wins and its span is removed from the body exactly once.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*Recipe Name\*\*\n(.+?)\n\n`), // labeled block followed by a blank line
	regexp.MustCompile(`^(.+?)\n\n`),                     // unlabeled first line followed by a blank line
	regexp.MustCompile(`^(.+?)\n`),                       // bare first line
	regexp.MustCompile(`^"(.+?)"\n`),                     // quoted first line
	regexp.MustCompile(`^Recipe Name:\s*(.+)`),           // explicit prefix
}

var (
	boldNameRe       = regexp.MustCompile(`^\*\*(.+?)\*\*$`)
	visPromptRe      = regexp.MustCompile(`\*\*Visualization Prompt\*\*\n(.+)`)
	visPromptLineRe  = regexp.MustCompile(`Visualization Prompt:.*`)
	nutritionBoldRe  = regexp.MustCompile(`(?s)\*\*Nutritional Value\*\*.*`)
	nutritionPlainRe = regexp.MustCompile(`(?s)Nutritional Information.*`)
)

// IsRefusal reports whether the generated text reads as a refusal or
// hedge rather than a recipe.
func IsRefusal(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range failurePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ExtractRecipe reduces the raw generated text to structured fields.
// Extraction is tolerant: every rule has a fallback and missing sections
// degrade to defaults instead of failing.
func ExtractRecipe(text string) ExtractedRecipe {
	text = strings.TrimSpace(text)

	name, body := extractName(text)
	// The model sometimes leaves the literal label in the body.
	body = strings.ReplaceAll(body, "Recipe Name", name)

	visPrompt, body, found := extractVisualizationPrompt(body)

	// Defensive cleanup of any leftover visualization lines, then drop the
	// nutritional section entirely.
	body = strings.TrimSpace(visPromptLineRe.ReplaceAllString(body, ""))
	body = strings.TrimSpace(visPromptRe.ReplaceAllString(body, ""))
	body = StripNutritionalInfo(body)

	return ExtractedRecipe{
		Name:                name,
		Body:                body,
		VisualizationPrompt: visPrompt,
		VisualizationFound:  found,
	}
}

// extractName applies the ordered name rules, first match wins. The
// matched span is removed from the returned body exactly once. Enclosing
// emphasis markers around the name are stripped.
func extractName(text string) (string, string) {
	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = boldNameRe.ReplaceAllString(name, "$1")
		body := strings.TrimSpace(strings.Replace(text, m[0], "", 1))
		return name, body
	}
	return DefaultRecipeName, text
}

// extractVisualizationPrompt finds the labeled visualization block and
// removes it from the body. When absent it still scrubs any residual
// labeled block and falls back to the default prompt.
func extractVisualizationPrompt(text string) (string, string, bool) {
	if m := visPromptRe.FindStringSubmatch(text); m != nil {
		prompt := strings.TrimSpace(m[1])
		body := strings.TrimSpace(strings.Replace(text, m[0], "", 1))
		return prompt, body, true
	}
	body := strings.TrimSpace(visPromptRe.ReplaceAllString(text, ""))
	return DefaultVisualizationPrompt, body, false
}

// StripNutritionalInfo removes everything from a nutritional marker to
// the end of the text. Nutritional sections must never reach the caller
// or the image prompt.
func StripNutritionalInfo(text string) string {
	text = strings.TrimSpace(nutritionBoldRe.ReplaceAllString(text, ""))
	text = strings.TrimSpace(nutritionPlainRe.ReplaceAllString(text, ""))
	return text
}
