package api

import (
	"encoding/json"
	"errors"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string, the two input shapes callers send for
// ingredients, dietary choices and allergies.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*l = StringList{}
			return nil
		}
		*l = strings.Split(s, ",")
		return nil
	}

	return errors.New("should be a list or a comma-separated string")
}

// GenerateRecipeRequest is the body of POST /generate_recipe_and_image.
type GenerateRecipeRequest struct {
	Ingredients StringList `json:"ingredients"`
	NumPeople   int        `json:"num_people"`
	Dietary     StringList `json:"dietary"`
	Allergies   StringList `json:"allergies"`
}

// SubscribeRequest is the body of POST /subscribe.
type SubscribeRequest struct {
	UniqueID         string `json:"unique_id"`
	SubscriptionPlan string `json:"subscription_plan"`
}
