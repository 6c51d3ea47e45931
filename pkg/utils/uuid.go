package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateRunID gera o identificador de uma execução do pipeline.
func GenerateRunID() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	return "run_" + id, nil
}
