package main

import "github.com/matlabutils/matlab-easy-install/cmd/matlab-easy-install/cmd"

func main() {
	cmd.Execute()
}
