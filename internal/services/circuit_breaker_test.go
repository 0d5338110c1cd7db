package services

import (
	"testing"
	"time"

	"lifehub/internal/models"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock       time.Time
	transitions [][2]models.CircuitBreakerState
	breaker     *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.transitions = nil
	s.breaker = newCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
		OnStateChange: func(from, to models.CircuitBreakerState) {
			s.transitions = append(s.transitions, [2]models.CircuitBreakerState{from, to})
		},
	}, func() time.Time { return s.clock })
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()

	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
	s.Equal([][2]models.CircuitBreakerState{{StateClosed, StateOpen}}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()

	s.Equal(0, s.breaker.GetFailureCount())
	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterTimeoutThenCloses() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()

	s.clock = s.clock.Add(2 * time.Minute)
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())
	s.Len(s.transitions, 3)
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.clock = s.clock.Add(2 * time.Minute)
	s.breaker.IsOpen()

	s.breaker.RecordFailure()

	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()

	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
	s.Equal("closed", s.breaker.GetState().String())
}
