package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"neostrand/core"
	"neostrand/host/link"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate, must match the firmware UART")
	leds    = flag.Int("leds", 8, "Number of pixels on the strand")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	fmt.Println("Neostrand Host - WS2812B Strand Control")
	fmt.Println("=======================================")
	fmt.Println()

	if *leds < 0 || *leds > 65535 {
		fmt.Fprintf(os.Stderr, "Error: -leds must be between 0 and 65535\n")
		os.Exit(1)
	}

	fmt.Printf("Connecting to %s...\n", *device)
	conn, err := link.Connect(*device, *baud)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Device not responding: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Connected successfully!")

	if err := conn.Init(uint16(*leds)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize strand: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Strand initialized with %d pixels\n", *leds)

	pixels := make([]core.RGB, *leds)

	// Interactive command loop
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "ping":
			if err := conn.Ping(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println("Device is alive")

		case "init":
			if len(parts) != 2 {
				fmt.Println("Usage: init <count>")
				continue
			}
			n, err := strconv.ParseUint(parts[1], 10, 16)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: bad count %q\n", parts[1])
				continue
			}
			if err := conn.Init(uint16(n)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			pixels = make([]core.RGB, n)
			fmt.Printf("Strand initialized with %d pixels\n", n)

		case "fill":
			if len(parts) != 2 {
				fmt.Println("Usage: fill <RRGGBB>")
				continue
			}
			color, err := parseColor(parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			for i := range pixels {
				pixels[i] = color
			}
			push(conn, pixels)

		case "set":
			if len(parts) != 3 {
				fmt.Println("Usage: set <index> <RRGGBB>")
				continue
			}
			i, err := strconv.Atoi(parts[1])
			if err != nil || i < 0 || i >= len(pixels) {
				fmt.Fprintf(os.Stderr, "Error: bad index %q\n", parts[1])
				continue
			}
			color, err := parseColor(parts[2])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			pixels[i] = color
			push(conn, pixels)

		case "show":
			for i, p := range pixels {
				fmt.Printf("  [%3d] #%02X%02X%02X\n", i, p.R, p.G, p.B)
			}

		case "clear":
			if err := conn.Clear(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			for i := range pixels {
				pixels[i] = core.RGB{}
			}
			fmt.Println("Strand cleared")

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help            - Show this help message")
	fmt.Println("  ping            - Check the device is alive")
	fmt.Println("  init <count>    - Reinitialize the strand length")
	fmt.Println("  fill <RRGGBB>   - Set every pixel to a color")
	fmt.Println("  set <i> <RRGGBB> - Set one pixel")
	fmt.Println("  show            - Print the local frame state")
	fmt.Println("  clear           - Blank the strand")
	fmt.Println("  quit/exit/q     - Exit the program")
	fmt.Println()
}

// parseColor parses an RRGGBB hex color, with or without a leading #.
func parseColor(s string) (core.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return core.RGB{}, fmt.Errorf("color must be RRGGBB hex, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("color must be RRGGBB hex, got %q", s)
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// push sends the current frame and reports the outcome.
func push(conn *link.Link, pixels []core.RGB) {
	if err := conn.Frame(pixels); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if *verbose {
		fmt.Printf("Sent frame (%d pixels)\n", len(pixels))
	}
}
