package main

import "github.com/LeeJaeHyuck/calory-calendar/cmd/calcal"

func main() {
	calcal.Execute()
}
