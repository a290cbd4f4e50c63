package main

import "recruit-timeline.com/recruit-timeline/cmd"

func main() {
	cmd.Execute()
}
