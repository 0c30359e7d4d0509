package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	plano := "1234"
	if len(os.Args) > 1 {
		plano = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plano), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
