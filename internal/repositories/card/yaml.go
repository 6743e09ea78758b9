package card

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/jetlag/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var defaultDeck []byte

// ErrCardNotFound is returned when a card number is not in the deck
var ErrCardNotFound = errors.New("card not found")

// Config holds configuration for the YAML card repository
type Config struct {
	// Data is the YAML document to load, the embedded deck is used when empty
	Data []byte
}

type deckFile struct {
	Cards []*models.Card `yaml:"cards"`
}

// yamlRepository implements the Repository interface over a YAML deck
type yamlRepository struct {
	cards map[int]*models.Card
	order []int
}

// NewYAML loads the deck and validates that cards are numbered 1..N without gaps
func NewYAML(cfg *Config) (*yamlRepository, error) {
	data := defaultDeck
	if cfg != nil && len(cfg.Data) > 0 {
		data = cfg.Data
	}

	var deck deckFile
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse card deck: %w", err)
	}

	if len(deck.Cards) == 0 {
		return nil, errors.New("card deck is empty")
	}

	repo := &yamlRepository{
		cards: make(map[int]*models.Card, len(deck.Cards)),
		order: make([]int, 0, len(deck.Cards)),
	}

	for _, c := range deck.Cards {
		if c == nil {
			continue
		}
		if _, ok := repo.cards[c.ID]; ok {
			return nil, fmt.Errorf("duplicate card %d", c.ID)
		}
		if c.Reward < 0 {
			return nil, fmt.Errorf("card %d has a negative reward", c.ID)
		}
		repo.cards[c.ID] = c
		repo.order = append(repo.order, c.ID)
	}

	sort.Ints(repo.order)
	for i, id := range repo.order {
		if id != i+1 {
			return nil, fmt.Errorf("card deck must be numbered 1..%d, missing %d", len(repo.order), i+1)
		}
	}

	return repo, nil
}

// GetCard retrieves a card by its number
func (r *yamlRepository) GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	c, ok := r.cards[input.CardID]
	if !ok {
		return nil, ErrCardNotFound
	}

	// Hand out a copy so callers cannot edit the deck
	out := *c
	return &out, nil
}

// ListCards returns the whole deck
func (r *yamlRepository) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	cards := make([]*models.Card, 0, len(r.order))
	for _, id := range r.order {
		c := *r.cards[id]
		cards = append(cards, &c)
	}

	return &ListCardsOutput{
		Cards: cards,
	}, nil
}
