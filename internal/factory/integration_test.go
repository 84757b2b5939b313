package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: complete flow from registration through a finished match
func (s *IntegrationSuite) TestCompleteMatchFlow() {
	// Step 1: Register both players
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "alice", "secret1"))
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "bob", "secret2"))

	// Step 2: Log both in together
	session, err := s.app.AuthService.LoginBoth(s.ctx, "alice", "secret1", "bob", "secret2")
	s.Require().NoError(err)
	s.Equal("alice", session.Player1Name)
	s.Equal("bob", session.Player2Name)

	// Step 3: The token round-trips through validation
	validated, err := s.app.AuthService.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, validated.Token)

	// Step 4: Play five rounds, alternating winners, one draw
	rounds := []struct {
		p1, p2 model.Choice
	}{
		{model.Paper, model.Stone},   // alice
		{model.Stone, model.Paper},   // bob
		{model.Scissor, model.Paper}, // alice
		{model.Stone, model.Stone},   // draw
		{model.Paper, model.Stone},   // alice
	}
	for _, round := range rounds {
		p2 := round.p2
		err := session.WithMatch(func(m *model.Match) error {
			if err := s.app.MatchController.Lock(m, round.p1); err != nil {
				return err
			}
			_, err := s.app.MatchController.Play(m, model.ModePlayer, model.DifficultyEasy, &p2)
			return err
		})
		s.Require().NoError(err)
	}

	// Step 5: The match is complete with alice ahead 3-1
	err = session.WithMatch(func(m *model.Match) error {
		s.True(m.Completed)
		s.Equal(3, m.Score1)
		s.Equal(1, m.Score2)
		s.Len(m.History, 5)

		result, ok := s.app.MatchController.Result(m, model.ModePlayer)
		s.True(ok)
		s.Equal("alice", result)

		counts := s.app.MatchController.WinCounts(m)
		s.Require().Len(counts, 2)
		s.Equal("alice", counts[0].Name)
		s.Equal(3, counts[0].Wins)
		return nil
	})
	s.Require().NoError(err)

	// Step 6: Rematch gives a playable fresh match for the same pair
	err = session.WithMatch(func(m *model.Match) error {
		s.app.MatchController.Rematch(m)
		s.False(m.Completed)
		s.Empty(m.History)
		return s.app.MatchController.Lock(m, model.Stone)
	})
	s.Require().NoError(err)
}

// Test: computer opponent flow with the deterministic mocks
func (s *IntegrationSuite) TestComputerMatchFlow() {
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "alice", "secret1"))
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "bob", "secret2"))
	session, err := s.app.AuthService.LoginBoth(s.ctx, "alice", "secret1", "bob", "secret2")
	s.Require().NoError(err)

	// Easy: queued random picks Paper, Stone loses
	s.app.MockRandom.QueueIntn(int(model.Paper))
	err = session.WithMatch(func(m *model.Match) error {
		if err := s.app.MatchController.Lock(m, model.Stone); err != nil {
			return err
		}
		rec, err := s.app.MatchController.Play(m, model.ModeComputer, model.DifficultyEasy, nil)
		if err != nil {
			return err
		}
		s.Equal(model.Paper, rec.Player2Choice)
		s.Equal(model.ComputerName, rec.Winner)
		return nil
	})
	s.Require().NoError(err)

	// Hard: counters the lock regardless of random state
	err = session.WithMatch(func(m *model.Match) error {
		if err := s.app.MatchController.Lock(m, model.Paper); err != nil {
			return err
		}
		rec, err := s.app.MatchController.Play(m, model.ModeComputer, model.DifficultyHard, nil)
		if err != nil {
			return err
		}
		s.Equal(model.Scissor, rec.Player2Choice)
		s.Equal(model.ComputerName, rec.Winner)
		return nil
	})
	s.Require().NoError(err)
}

// Test: round timeout penalty with the mock clock
func (s *IntegrationSuite) TestRoundTimeout() {
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "alice", "secret1"))
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "bob", "secret2"))
	session, err := s.app.AuthService.LoginBoth(s.ctx, "alice", "secret1", "bob", "secret2")
	s.Require().NoError(err)

	err = session.WithMatch(func(m *model.Match) error {
		s.app.MatchController.BeginRound(m)
		if err := s.app.MatchController.Lock(m, model.Paper); err != nil {
			return err
		}

		// Past the limit the opponent scores even though Paper wraps Stone
		s.app.MockClock.Advance(11 * time.Second)
		p2 := model.Stone
		rec, err := s.app.MatchController.Play(m, model.ModePlayer, model.DifficultyEasy, &p2)
		if err != nil {
			return err
		}
		s.Equal("bob", rec.Winner)
		s.Equal(model.Paper, rec.Player1Choice)
		s.Equal(model.Stone, rec.Player2Choice)
		s.Equal(1, m.Score2)
		return nil
	})
	s.Require().NoError(err)
}

// Test: session expiry is driven by the clock
func (s *IntegrationSuite) TestSessionExpiry() {
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "alice", "secret1"))
	s.Require().NoError(s.app.AuthService.Register(s.ctx, "bob", "secret2"))
	session, err := s.app.AuthService.LoginBoth(s.ctx, "alice", "secret1", "bob", "secret2")
	s.Require().NoError(err)

	s.app.MockClock.Advance(25 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(session.Token)
	s.Error(err)
}
