// Command icarectl replays proposal scenarios and prints mazes offline.
package main

func main() {
	Execute()
}
