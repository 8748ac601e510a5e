package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const batchIDLength = 12

// GenerateID gera o identificador de um lote de snapshot
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, batchIDLength)
}
