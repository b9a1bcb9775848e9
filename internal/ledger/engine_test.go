package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bankrollhq/bankroll/internal/model"
)

type EngineSuite struct {
	suite.Suite
	room *model.Room
	now  time.Time
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.room = model.NewRoom("ABC123", s.now)
}

func (s *EngineSuite) join(name string) *model.Player {
	player, err := Join(s.room, model.PlayerID("id-"+name), name, s.now)
	s.Require().NoError(err)
	return player
}

// Join tests

func (s *EngineSuite) TestJoinSucceeds() {
	player, err := Join(s.room, "p1", "Alice", s.now)
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p1"), player.ID)
	s.Equal("Alice", player.Name)
	s.Equal(int64(1500), player.Balance)
	s.Len(s.room.Players, 1)

	s.Require().Len(s.room.History, 1)
	s.Equal(model.EventJoin, s.room.History[0].Type)
	s.Equal("Alice joined the game", s.room.History[0].Text)
}

func (s *EngineSuite) TestJoinTrimsName() {
	player, err := Join(s.room, "p1", "  Alice  ", s.now)
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
}

func (s *EngineSuite) TestJoinRejectsEmptyName() {
	_, err := Join(s.room, "p1", "   ", s.now)
	s.ErrorIs(err, model.ErrNameRequired)
	s.Empty(s.room.Players)
	s.Empty(s.room.History)
}

func (s *EngineSuite) TestJoinAllowsDuplicateNames() {
	a, err := Join(s.room, "p1", "Alice", s.now)
	s.Require().NoError(err)
	b, err := Join(s.room, "p2", "Alice", s.now)
	s.Require().NoError(err)

	s.NotEqual(a.ID, b.ID)
	s.Equal(int64(1500), a.Balance)
	s.Equal(int64(1500), b.Balance)
	s.Len(s.room.Players, 2)
}

// Transfer tests

func (s *EngineSuite) TestTransferBankToPlayer() {
	alice := s.join("Alice")

	err := Transfer(s.room, model.BankAccount, string(alice.ID), 200, s.now)
	s.Require().NoError(err)

	s.Equal(int64(1700), alice.Balance)
	// The bank is an unlimited source; it is never debited
	s.Equal(model.InitialBankBalance, s.room.Bank)
	s.Equal(model.EventBank, s.room.History[0].Type)
	s.Equal("Bank → Alice ($200)", s.room.History[0].Text)
}

func (s *EngineSuite) TestTransferPlayerToBank() {
	alice := s.join("Alice")

	err := Transfer(s.room, string(alice.ID), model.BankAccount, 300, s.now)
	s.Require().NoError(err)

	s.Equal(int64(1200), alice.Balance)
	s.Equal(model.InitialBankBalance+300, s.room.Bank)
	s.Equal("Alice → Bank ($300)", s.room.History[0].Text)
}

func (s *EngineSuite) TestTransferPlayerToPlayer() {
	alice := s.join("Alice")
	bob := s.join("Bob")

	err := Transfer(s.room, string(alice.ID), string(bob.ID), 500, s.now)
	s.Require().NoError(err)

	s.Equal(int64(1000), alice.Balance)
	s.Equal(int64(2000), bob.Balance)
	s.Equal(model.EventTransfer, s.room.History[0].Type)
	s.Equal("Alice → Bob ($500)", s.room.History[0].Text)
}

func (s *EngineSuite) TestTransferSelfPaymentIsNoOp() {
	alice := s.join("Alice")

	err := Transfer(s.room, string(alice.ID), string(alice.ID), 100, s.now)
	s.Require().NoError(err)

	s.Equal(int64(1500), alice.Balance)
	s.Equal("Alice → Alice ($100)", s.room.History[0].Text)
}

func (s *EngineSuite) TestTransferInsufficientFundsToBank() {
	alice := s.join("Alice")

	err := Transfer(s.room, string(alice.ID), model.BankAccount, 2000, s.now)
	s.ErrorIs(err, model.ErrInsufficientFunds)

	s.Equal(int64(1500), alice.Balance)
	s.Equal(model.InitialBankBalance, s.room.Bank)
}

func (s *EngineSuite) TestTransferInsufficientFundsToPlayer() {
	alice := s.join("Alice")
	bob := s.join("Bob")

	err := Transfer(s.room, string(alice.ID), string(bob.ID), 1501, s.now)
	s.ErrorIs(err, model.ErrInsufficientFunds)

	// A failed transfer mutates nothing
	s.Equal(int64(1500), alice.Balance)
	s.Equal(int64(1500), bob.Balance)
	s.Len(s.room.History, 2) // just the two joins
}

func (s *EngineSuite) TestTransferUnknownFromPlayer() {
	s.join("Alice")

	err := Transfer(s.room, "nonexistent", model.BankAccount, 100, s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *EngineSuite) TestTransferUnknownToPlayer() {
	alice := s.join("Alice")

	err := Transfer(s.room, string(alice.ID), "nonexistent", 100, s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	s.Equal(int64(1500), alice.Balance)
}

func (s *EngineSuite) TestTransferBankToUnknownPlayer() {
	err := Transfer(s.room, model.BankAccount, "nonexistent", 100, s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *EngineSuite) TestTransferRejectsNonPositiveAmount() {
	alice := s.join("Alice")

	s.ErrorIs(Transfer(s.room, model.BankAccount, string(alice.ID), 0, s.now), model.ErrInvalidAmount)
	s.ErrorIs(Transfer(s.room, model.BankAccount, string(alice.ID), -5, s.now), model.ErrInvalidAmount)
	s.Equal(int64(1500), alice.Balance)
}

func (s *EngineSuite) TestTransferRejectsBankToBank() {
	err := Transfer(s.room, model.BankAccount, model.BankAccount, 100, s.now)
	s.ErrorIs(err, model.ErrInvalidTransfer)
}

func (s *EngineSuite) TestTransferRejectsEmptyAccounts() {
	alice := s.join("Alice")

	s.ErrorIs(Transfer(s.room, "", string(alice.ID), 100, s.now), model.ErrInvalidTransfer)
	s.ErrorIs(Transfer(s.room, string(alice.ID), "", 100, s.now), model.ErrInvalidTransfer)
}

// Free Parking tests

func (s *EngineSuite) TestPayParking() {
	alice := s.join("Alice")

	err := PayParking(s.room, alice.ID, 300, s.now)
	s.Require().NoError(err)

	s.Equal(int64(1200), alice.Balance)
	s.Equal(int64(300), s.room.Parking)
	s.Equal(model.EventParking, s.room.History[0].Type)
	s.Equal("Alice → Free Parking ($300)", s.room.History[0].Text)
}

func (s *EngineSuite) TestPayParkingInsufficientFunds() {
	alice := s.join("Alice")

	err := PayParking(s.room, alice.ID, 1501, s.now)
	s.ErrorIs(err, model.ErrInsufficientFunds)

	s.Equal(int64(1500), alice.Balance)
	s.Equal(int64(0), s.room.Parking)
}

func (s *EngineSuite) TestPayParkingRejectsNonPositiveAmount() {
	alice := s.join("Alice")

	s.ErrorIs(PayParking(s.room, alice.ID, 0, s.now), model.ErrInvalidAmount)
	s.ErrorIs(PayParking(s.room, alice.ID, -10, s.now), model.ErrInvalidAmount)
}

func (s *EngineSuite) TestPayParkingUnknownPlayer() {
	err := PayParking(s.room, "nonexistent", 100, s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *EngineSuite) TestCollectParking() {
	alice := s.join("Alice")
	bob := s.join("Bob")
	s.Require().NoError(PayParking(s.room, alice.ID, 300, s.now))

	err := CollectParking(s.room, bob.ID, s.now)
	s.Require().NoError(err)

	s.Equal(int64(0), s.room.Parking)
	s.Equal(int64(1800), bob.Balance)
	s.Equal("Bob collected Free Parking ($300)", s.room.History[0].Text)
}

func (s *EngineSuite) TestCollectParkingEmptyPot() {
	alice := s.join("Alice")

	err := CollectParking(s.room, alice.ID, s.now)
	s.Require().NoError(err)

	s.Equal(int64(0), s.room.Parking)
	s.Equal(int64(1500), alice.Balance)
	s.Equal("Alice collected Free Parking ($0)", s.room.History[0].Text)
}

func (s *EngineSuite) TestCollectParkingUnknownPlayer() {
	err := CollectParking(s.room, "nonexistent", s.now)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// History tests

func (s *EngineSuite) TestHistoryIsNewestFirst() {
	alice := s.join("Alice")
	s.Require().NoError(Transfer(s.room, model.BankAccount, string(alice.ID), 100, s.now))
	s.Require().NoError(PayParking(s.room, alice.ID, 50, s.now))

	s.Require().Len(s.room.History, 3)
	s.Equal("Alice → Free Parking ($50)", s.room.History[0].Text)
	s.Equal("Bank → Alice ($100)", s.room.History[1].Text)
	s.Equal("Alice joined the game", s.room.History[2].Text)
}

func (s *EngineSuite) TestHistoryIsCapped() {
	alice := s.join("Alice")

	// 51 transfers after the join; the join and the first transfer
	// fall off the end of the log
	for i := 1; i <= 51; i++ {
		err := Transfer(s.room, model.BankAccount, string(alice.ID), int64(i), s.now)
		s.Require().NoError(err)
	}

	s.Len(s.room.History, model.MaxHistoryEntries)
	s.Equal("Bank → Alice ($51)", s.room.History[0].Text)
	s.Equal("Bank → Alice ($2)", s.room.History[49].Text)

	for _, e := range s.room.History {
		s.NotEqual("Alice joined the game", e.Text)
		s.NotEqual(fmt.Sprintf("Bank → Alice ($%d)", 1), e.Text)
	}
}
