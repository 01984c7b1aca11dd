package main

import "courierdesk/cmd/server/cmd"

func main() {
	cmd.Execute()
}
