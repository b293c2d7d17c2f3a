package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Bound on all interfaces.
const listenAddr = ":8000"

func GetServerTime(c *gin.Context, serverTimeRetriever ServerTimeRetriever) {
	millis, err := serverTimeRetriever.Retrieve()
	if err != nil {
		log.Printf("Unable to read server time: %s\n", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to read server time"})
		return
	}

	c.String(http.StatusOK, strconv.FormatInt(millis, 10))
}

func setupRouter(serverTimeRetriever ServerTimeRetriever) *gin.Engine {
	serv := gin.Default()
	serv.HandleMethodNotAllowed = true

	handler := func(c *gin.Context) {
		GetServerTime(c, serverTimeRetriever)
	}
	serv.GET("/", handler)
	serv.HEAD("/", handler)

	return serv
}

func main() {
	log.Println("Starting server...")

	serv := setupRouter(&ServerTimeClient{})

	log.Println("Listening on port: " + listenAddr)
	if err := serv.Run(listenAddr); err != nil {
		log.Fatalf("Unable to start server: %s", err.Error())
	}
}
