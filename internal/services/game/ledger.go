package game

import "github.com/KirkDiggler/jetlag/internal/models"

// credit adds coins to a player, callers hold mu
func credit(p *models.Player, amount int) {
	if amount <= 0 {
		return
	}
	p.Coins += amount
}

// debit removes exactly amount coins or nothing at all, callers hold mu
func debit(p *models.Player, amount int) error {
	if amount < 0 || p.Coins < amount {
		return ErrInsufficientFunds
	}
	p.Coins -= amount
	return nil
}
