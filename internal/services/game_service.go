package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
)

const (
	GameJanken      = "janken"
	GameNumberGuess = "number_guess"
	GameFortune     = "fortune"

	NumberGuessMax = 10

	numberGuessPrompt  = "1～10の数字を当ててください！"
	numberGuessCorrect = "正解！答えは %d でした！🎉"
	numberGuessHigher  = "もっと大きい数字です！"
	numberGuessLower   = "もっと小さい数字です！"

	jankenDraw = "あいこ"
	jankenWin  = "あなたの勝ち！"
	jankenLose = "あなたの負け…"
)

var (
	ErrInvalidHand  = errors.New("invalid janken hand")
	ErrInvalidGuess = errors.New("guess out of range")
)

// JankenHands in the order the computer draws from.
var JankenHands = []string{"グー", "チョキ", "パー"}

var jankenSymbols = map[string]string{
	"グー":  "✊",
	"チョキ": "✌",
	"パー":  "✋",
}

// jankenBeats maps each hand to the hand it defeats.
var jankenBeats = map[string]string{
	"グー":  "チョキ",
	"チョキ": "パー",
	"パー":  "グー",
}

var Fortunes = []string{"大吉", "中吉", "小吉", "吉", "末吉", "凶"}

// MathRandomizer draws from the global math/rand/v2 source.
type MathRandomizer struct{}

func (MathRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

type GameService struct {
	sessionRepo repositories.GameSessionRepositoryInterface
	weather     WeatherServiceInterface
	random      Randomizer
	metrics     MetricsRecorderInterface
	defaultCity string
}

func NewGameService(
	sessionRepo repositories.GameSessionRepositoryInterface,
	weather WeatherServiceInterface,
	random Randomizer,
	metrics MetricsRecorderInterface,
	defaultCity string,
) GameServiceInterface {
	if random == nil {
		random = MathRandomizer{}
	}
	if defaultCity == "" {
		defaultCity = "Tokyo"
	}
	return &GameService{
		sessionRepo: sessionRepo,
		weather:     weather,
		random:      random,
		metrics:     metrics,
		defaultCity: defaultCity,
	}
}

func IsJankenHand(hand string) bool {
	_, ok := jankenSymbols[hand]
	return ok
}

func (s *GameService) Janken(hand string) (*dto.JankenResult, error) {
	if !IsJankenHand(hand) {
		return nil, ErrInvalidHand
	}

	computer := JankenHands[s.random.IntN(len(JankenHands))]

	var result string
	switch {
	case hand == computer:
		result = jankenDraw
	case jankenBeats[hand] == computer:
		result = jankenWin
	default:
		result = jankenLose
	}

	s.recordPlay(GameJanken)

	return &dto.JankenResult{
		UserHand:     hand + " " + jankenSymbols[hand],
		ComputerHand: computer + " " + jankenSymbols[computer],
		Result:       result,
	}, nil
}

// NumberGuess returns the current game, starting one if none is running.
func (s *GameService) NumberGuess(actorID uuid.UUID) (*dto.NumberGuessState, error) {
	session, err := s.numberGuessSession(actorID)
	if err != nil {
		return nil, err
	}
	return numberGuessState(session.Message), nil
}

func (s *GameService) Guess(actorID uuid.UUID, guess int) (*dto.NumberGuessState, error) {
	if guess < 1 || guess > NumberGuessMax {
		return nil, ErrInvalidGuess
	}

	session, err := s.numberGuessSession(actorID)
	if err != nil {
		return nil, err
	}
	answer := *session.Answer

	switch {
	case guess == answer:
		session.Message = fmt.Sprintf(numberGuessCorrect, answer)
	case guess < answer:
		session.Message = numberGuessHigher
	default:
		session.Message = numberGuessLower
	}

	if err := s.sessionRepo.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save guess: %w", err)
	}

	s.recordPlay(GameNumberGuess)

	return numberGuessState(session.Message), nil
}

func (s *GameService) numberGuessSession(actorID uuid.UUID) (*models.GameSession, error) {
	session, err := s.sessionRepo.Get(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game session: %w", err)
	}

	if !session.HasAnswer() {
		answer := s.random.IntN(NumberGuessMax) + 1
		session.Answer = &answer
		session.Message = numberGuessPrompt
		if err := s.sessionRepo.Save(session); err != nil {
			return nil, fmt.Errorf("failed to start number guess: %w", err)
		}
	}

	return session, nil
}

// ResetNumberGuess clears every game value and starts a new round.
func (s *GameService) ResetNumberGuess(actorID uuid.UUID) (*dto.NumberGuessState, error) {
	session, err := s.sessionRepo.Get(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game session: %w", err)
	}

	session.Reset()
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, fmt.Errorf("failed to reset game session: %w", err)
	}

	return s.NumberGuess(actorID)
}

func (s *GameService) FortuneWeather(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error) {
	session, err := s.sessionRepo.Get(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game session: %w", err)
	}

	city := session.City
	if city == "" {
		city = s.defaultCity
	}

	return &dto.FortuneWeatherResponse{
		City:    city,
		Weather: s.weather.Current(ctx, city),
		Fortune: session.Fortune,
	}, nil
}

func (s *GameService) SetCity(ctx context.Context, actorID uuid.UUID, city string) (*dto.FortuneWeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.defaultCity
	}

	err := s.updateSession(actorID, func(session *models.GameSession) {
		session.City = city
	})
	if err != nil {
		return nil, err
	}

	return s.FortuneWeather(ctx, actorID)
}

func (s *GameService) DrawFortune(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error) {
	fortune := Fortunes[s.random.IntN(len(Fortunes))]

	err := s.updateSession(actorID, func(session *models.GameSession) {
		session.Fortune = &fortune
	})
	if err != nil {
		return nil, err
	}

	s.recordPlay(GameFortune)

	return s.FortuneWeather(ctx, actorID)
}

// ResetFortune clears the drawn fortune and keeps the city.
func (s *GameService) ResetFortune(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error) {
	err := s.updateSession(actorID, func(session *models.GameSession) {
		session.Fortune = nil
	})
	if err != nil {
		return nil, err
	}

	return s.FortuneWeather(ctx, actorID)
}

func (s *GameService) updateSession(actorID uuid.UUID, mutate func(*models.GameSession)) error {
	session, err := s.sessionRepo.Get(actorID)
	if err != nil {
		return fmt.Errorf("failed to load game session: %w", err)
	}

	mutate(session)

	if err := s.sessionRepo.Save(session); err != nil {
		return fmt.Errorf("failed to save game session: %w", err)
	}
	return nil
}

func (s *GameService) recordPlay(game string) {
	s.metrics.IncrementCounter(MetricGamePlayed, map[string]string{"game": game})
}

func numberGuessState(message string) *dto.NumberGuessState {
	return &dto.NumberGuessState{
		Message: message,
		Solved:  strings.HasPrefix(message, "正解"),
	}
}
