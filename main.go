package main

import "github.com/clems4ever/spacy-inspect/cmd"

func main() {
	cmd.Execute()
}
