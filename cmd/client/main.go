package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "ADDFIRST", "ADDLAST":
		// requires exactly one value
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s requires a single value", command)
		}
		request["value"] = parts[1]

	case "REMOVEFIRST", "REMOVELAST", "FIRST", "LAST", "LEN", "PRINT", "AVG", "CLEAR":
		if len(parts) > 1 {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}

	default:
		// Unknown command
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

// formatResponse renders a server response for the terminal
func formatResponse(response map[string]interface{}) string {
	status, _ := response["status"].(string)
	switch status {
	case "OK":
		if message, ok := response["message"].(string); ok {
			return "Server: " + message
		}
		if value, ok := response["value"]; ok {
			return fmt.Sprint("Server: ", value)
		}
		return "Server: OK"
	case "NOT_FOUND":
		return "Server: (empty)"
	case "ERROR":
		return fmt.Sprint("Server Error: ", response["message"])
	default:
		return fmt.Sprint("Unexpected server response: ", response)
	}
}

func main() {
	addrPtr := flag.String("addr", "localhost:6379", "Address of the deque server")
	flag.Parse()

	conn, err := net.Dial("tcp", *addrPtr)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer conn.Close()

	encoder := msgpack.NewEncoder(conn)
	decoder := msgpack.NewDecoder(bufio.NewReader(conn))

	fmt.Println("Connected to server. Type commands (e.g., ADDFIRST 1, ADDLAST 2, REMOVEFIRST, PRINT, AVG) and press Enter.")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(">> ")
		// Read user input
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}
		input = strings.TrimSpace(input)

		// Parse and validate the input
		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		if err := encoder.Encode(request); err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}

		var serverResponse map[string]interface{}
		if err := decoder.Decode(&serverResponse); err != nil {
			fmt.Println("Error reading from server:", err)
			return
		}

		fmt.Println(formatResponse(serverResponse))
	}
}
