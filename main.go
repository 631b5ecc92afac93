package main

import "github.com/Makhuta/arr-monitor-manager/cmd"

func main() {
	cmd.Execute()
}
