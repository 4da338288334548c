package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vskvj3/deques/internal/datastructures"
	"github.com/vskvj3/deques/internal/utils"
)

// averager is implemented by deques that keep a running average.
type averager interface {
	Average() (float64, bool)
}

// clearer is implemented by deques that can drop all items at once.
type clearer interface {
	Clear()
}

type CommandHandler struct {
	Deque  datastructures.Deque[float64]
	logger *utils.Logger
}

// Create a new CommandHandler instance
func NewCommandHandler(deque datastructures.Deque[float64], logger *utils.Logger) *CommandHandler {
	return &CommandHandler{Deque: deque, logger: logger}
}

// HandleCommand executes a request against the deque and returns the response
func (h *CommandHandler) HandleCommand(request map[string]interface{}) map[string]interface{} {
	command, ok := request["command"].(string)
	if !ok {
		return errorResponse("Invalid or missing 'command' field")
	}

	command = strings.ToUpper(command)
	h.logger.Debug("Handling " + command)

	switch command {
	case "ADDFIRST", "ADDLAST":
		value, err := parseValue(request["value"])
		if err != nil {
			return errorResponse(command + " requires a numeric 'value' field")
		}
		if command == "ADDFIRST" {
			h.Deque.AddFirst(value)
		} else {
			h.Deque.AddLast(value)
		}
		return map[string]interface{}{"status": "OK"}

	case "REMOVEFIRST":
		return valueResponse(h.Deque.RemoveFirst())

	case "REMOVELAST":
		return valueResponse(h.Deque.RemoveLast())

	case "FIRST":
		return valueResponse(h.Deque.GetFirst())

	case "LAST":
		return valueResponse(h.Deque.GetLast())

	case "LEN":
		return map[string]interface{}{"status": "OK", "value": h.Deque.Len()}

	case "PRINT":
		return map[string]interface{}{"status": "OK", "message": h.Deque.String()}

	case "AVG":
		avg, ok := h.Deque.(averager)
		if !ok {
			return errorResponse(fmt.Sprintf("AVG is not supported by %T", h.Deque))
		}
		return valueResponse(avg.Average())

	case "CLEAR":
		c, ok := h.Deque.(clearer)
		if !ok {
			return errorResponse(fmt.Sprintf("CLEAR is not supported by %T", h.Deque))
		}
		c.Clear()
		return map[string]interface{}{"status": "OK"}

	default:
		h.logger.Warn("Unknown command: " + command)
		return errorResponse("Unknown command")
	}
}

// parseValue accepts the numeric encodings a request may carry. Values that
// are not finite are rejected so they cannot poison a running sum.
func parseValue(raw interface{}) (float64, error) {
	v, err := toFloat(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	return v, nil
}

func toFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseFloat(v, 64)
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func valueResponse(value float64, ok bool) map[string]interface{} {
	if !ok {
		return map[string]interface{}{"status": "NOT_FOUND"}
	}
	return map[string]interface{}{"status": "OK", "value": value}
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "message": message}
}
