// Package pricecode contiene las transformaciones reversibles usadas para
// ocultar precios: inversión de dígitos y sustitución dígito/letra.
package pricecode

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidCharError indica un carácter fuera del dominio válido
type InvalidCharError struct {
	Input string
	Char  rune
	Pos   int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d in %q", e.Char, e.Pos, e.Input)
}

// ErrEmpty se devuelve cuando la entrada está vacía
var ErrEmpty = errors.New("empty price code")

// EncodePrice invierte la secuencia de caracteres del precio.
// Aplicarla dos veces devuelve el valor original.
func EncodePrice(price string) string {
	runes := []rune(price)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// AlphabetEncode convierte cada dígito d en la letra 'a'+d (0→a, 9→j)
func AlphabetEncode(price string) (string, error) {
	if price == "" {
		return "", ErrEmpty
	}

	var b strings.Builder
	b.Grow(len(price))
	for i, r := range price {
		if r < '0' || r > '9' {
			return "", &InvalidCharError{Input: price, Char: r, Pos: i}
		}
		b.WriteRune('a' + (r - '0'))
	}
	return b.String(), nil
}

// NumberDecode es la inversa de AlphabetEncode; solo acepta letras a..j
func NumberDecode(letters string) (string, error) {
	if letters == "" {
		return "", ErrEmpty
	}

	var b strings.Builder
	b.Grow(len(letters))
	for i, r := range letters {
		if r < 'a' || r > 'j' {
			return "", &InvalidCharError{Input: letters, Char: r, Pos: i}
		}
		b.WriteRune('0' + (r - 'a'))
	}
	return b.String(), nil
}
