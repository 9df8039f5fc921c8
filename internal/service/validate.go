package service

import "strings"

// nonVegetarianIngredients is the fixed catalog checked against the
// vegetarian dietary choice. Matching is exact on the lowercased, trimmed
// ingredient name.
var nonVegetarianIngredients = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"lamb chops", "beef steak", "pork chops", "chicken breast", "turkey breast",
		"duck breast", "veal cutlets", "pork tenderloin", "beef brisket", "lamb shank",
		"beef ribs", "pork ribs", "chicken thighs", "ground beef", "ground pork",
		"ground chicken", "ground turkey", "bacon", "ham", "sausage (various types)",
		"cornish hen", "rabbit", "venison", "quail", "pheasant", "bison steak", "goat meat",
		"frog legs", "wild boar", "ostrich meat",
		"chicken drumsticks", "chicken wings", "chicken tenderloins", "whole chicken",
		"chicken quarters", "chicken legs", "chicken thighs (boneless, skinless)",
		"chicken breasts (bone-in, skin-on)", "chicken sausage",
		"chicken liver", "chicken gizzards", "chicken hearts", "chicken back", "chicken neck",
		"chicken feet", "chicken cutlets", "chicken schnitzel", "chicken strips", "chicken nuggets",
		"chicken meatballs", "chicken patties", "rotisserie chicken", "fried chicken",
		"chicken kabobs", "chicken tenders", "chicken satay", "chicken cordon bleu", "beef burger patty",
		"turkey burger patty", "chicken burger patty", "pork burger patty", "lamb burger patty",
		"veal burger patty", "bison burger patty", "venison burger patty", "salmon burger patty",
		"tuna burger patty", "crab cake burger patty", "shrimp burger patty", "duck burger patty",
		"canned tuna", "canned salmon", "canned sardines", "canned anchovies", "canned clams",
		"canned crab meat", "canned shrimp", "canned oysters", "canned escargot", "canned beef",
		"canned chicken", "canned herring", "canned sprats", "frozen meat (chicken breasts, beef patties)",
		"frozen seafood (shrimp, fish fillets)", "frozen meatballs", "frozen sausage", "frozen hot dogs",
		"frozen burgers", "frozen chicken nuggets", "frozen fish sticks", "beef jerky", "turkey jerky",
	} {
		nonVegetarianIngredients[name] = struct{}{}
	}
}

// ValidateConstraints rejects ingredient/dietary combinations that are
// self-contradictory before any generation call is made. Only the
// vegetarian-versus-meat conflict is enforced programmatically; allergies
// and the remaining dietary choices are handled in the prompt.
func ValidateConstraints(ingredients, dietary []string) error {
	vegetarian := false
	for _, d := range dietary {
		if strings.EqualFold(strings.TrimSpace(d), "vegetarian") {
			vegetarian = true
			break
		}
	}
	if !vegetarian {
		return nil
	}

	for _, ing := range ingredients {
		normalized := strings.ToLower(strings.TrimSpace(ing))
		if _, ok := nonVegetarianIngredients[normalized]; ok {
			return ErrDietaryConflict
		}
	}
	return nil
}
