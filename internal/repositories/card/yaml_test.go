package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type YAMLRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *YAMLRepositoryTestSuite) SetupTest() {
	repo, err := NewYAML(nil)
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func TestYAMLRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(YAMLRepositoryTestSuite))
}

func (s *YAMLRepositoryTestSuite) TestEmbeddedDeckIsComplete() {
	output, err := s.repo.ListCards(s.ctx, &ListCardsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Cards, 21)

	for i, c := range output.Cards {
		s.Equal(i+1, c.ID)
		s.NotEmpty(c.Challenge)
		s.NotEmpty(c.Picture)
		s.Positive(c.Reward)
	}
}

func (s *YAMLRepositoryTestSuite) TestGetCard() {
	c, err := s.repo.GetCard(s.ctx, &GetCardInput{CardID: 14})
	s.Require().NoError(err)
	s.Equal(14, c.ID)
	s.Equal(200, c.Reward)
}

func (s *YAMLRepositoryTestSuite) TestGetCardReturnsCopy() {
	c, err := s.repo.GetCard(s.ctx, &GetCardInput{CardID: 1})
	s.Require().NoError(err)
	c.Reward = 99999

	again, err := s.repo.GetCard(s.ctx, &GetCardInput{CardID: 1})
	s.Require().NoError(err)
	s.Equal(150, again.Reward)
}

func (s *YAMLRepositoryTestSuite) TestGetCardNotFound() {
	_, err := s.repo.GetCard(s.ctx, &GetCardInput{CardID: 22})
	s.ErrorIs(err, ErrCardNotFound)

	_, err = s.repo.GetCard(s.ctx, nil)
	s.Error(err)
}

func (s *YAMLRepositoryTestSuite) TestCustomDeck() {
	repo, err := NewYAML(&Config{Data: []byte(`
cards:
  - id: 2
    challenge: two
    reward: 20
  - id: 1
    challenge: one
    reward: 10
`)})
	s.Require().NoError(err)

	output, err := repo.ListCards(s.ctx, &ListCardsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Cards, 2)
	s.Equal("one", output.Cards[0].Challenge)
	s.Equal("two", output.Cards[1].Challenge)
}

func (s *YAMLRepositoryTestSuite) TestRejectsBadDecks() {
	cases := map[string]string{
		"empty":     `cards: []`,
		"gap":       "cards:\n  - id: 1\n  - id: 3\n",
		"duplicate": "cards:\n  - id: 1\n  - id: 1\n",
		"negative":  "cards:\n  - id: 1\n    reward: -5\n",
		"malformed": "cards: [",
	}

	for name, data := range cases {
		_, err := NewYAML(&Config{Data: []byte(data)})
		s.Error(err, name)
	}
}
