package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/contacts -attempts=60
func main() {
	url := flag.String("url", "http://localhost:8080/contacts",
		"the URL to poll until it answers OK")
	attempts := flag.Int("attempts", 0,
		"give up after this many polls, 0 polls forever")
	flag.Parse()
	totalWaitTime := 0
	for count := 0; *attempts == 0 || count < *attempts; count++ {
		res, err := http.Get(*url)
		if err == nil {
			if res.StatusCode == http.StatusOK {
				fmt.Println(res)
				return
			}
			fmt.Println(res)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
	fmt.Println("giving up after", *attempts, "attempts")
	os.Exit(1)
}
