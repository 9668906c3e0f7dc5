package places

// StructuredFormatting splits a prediction into main and secondary text
// the way the places provider formats it.
type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// Prediction is one ranked autocomplete suggestion.
type Prediction struct {
	PlaceID              string               `json:"place_id"`
	Description          string               `json:"description"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
}

type autocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// PlaceDetails is the resolved place for a prediction the user picked.
type PlaceDetails struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type errorBody struct {
	Detail string `json:"detail"`
}
