package main

import "github.com/saludmaterna/maternidad_backend/cmd"

func main() {
	cmd.Execute()
}
