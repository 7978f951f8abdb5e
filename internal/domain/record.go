package domain

import "time"

// Record es una entrada de cadastro: quién envía, quién recibe y una nota
// opcional. El store asigna id y timestamp al crearla; ambos son inmutables.
type Record struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Note      *string   `json:"note"`
}
