package main

import "github.com/impruthvi/flexboard-bytes-sub000/cmd/fb/root"

func main() {
	root.Execute()
}
