package main

import (
	"log"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}
}
