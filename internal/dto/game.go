package dto

import "lifehub/internal/models"

type JankenRequest struct {
	Hand string `json:"hand" form:"hand" validate:"required,janken_hand"`
}

type JankenResult struct {
	UserHand     string `json:"userHand"`
	ComputerHand string `json:"computerHand"`
	Result       string `json:"result"`
}

type GuessRequest struct {
	Guess int `json:"guess" form:"guess" validate:"required,min=1,max=10"`
}

// NumberGuessState never exposes the answer.
type NumberGuessState struct {
	Message string `json:"message"`
	Solved  bool   `json:"solved"`
}

type CityRequest struct {
	City string `json:"city" form:"city" validate:"max=100"`
}

type FortuneWeatherResponse struct {
	City    string         `json:"city"`
	Weather models.Weather `json:"weather"`
	Fortune *string        `json:"fortune"`
}
