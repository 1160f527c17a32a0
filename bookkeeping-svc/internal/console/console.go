package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"
	"restaurant-bookkeeping/bookkeeping-svc/internal/service"
	"restaurant-bookkeeping/bookkeeping-svc/internal/validation"
)

const menuText = `
Welcome to the Restaurant Management System!
1. Add Menu Item
2. Remove Menu Item
3. Take Order
4. List Orders
5. Reserve Table
6. List Reservations
7. Exit
8. Add Table
9. List Tables`

// Console is the interactive text driver. A failed action is reported and
// the loop continues.
type Console struct {
	bookkeeper service.BookkeeperInterface
	in         *bufio.Scanner
	out        io.Writer

	startReader sync.Once
	lines       chan string
	// readErr is written before lines is closed.
	readErr error
	eof     bool
}

func New(bookkeeper service.BookkeeperInterface, in io.Reader, out io.Writer) *Console {
	return &Console{
		bookkeeper: bookkeeper,
		in:         bufio.NewScanner(in),
		out:        out,
		lines:      make(chan string),
	}
}

// Run returns nil on option 7, end of input or a cancelled ctx. A cancelled
// ctx also unblocks a pending prompt.
func (c *Console) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	c.startReader.Do(func() { go c.read(ctx) })

	for ctx.Err() == nil {
		c.println(menuText)
		choice, ok := c.prompt(ctx, "Please choose an option (1-9): ")
		if !ok {
			return c.err()
		}

		var more bool
		switch strings.TrimSpace(choice) {
		case "1":
			more = c.addMenuItem(ctx)
		case "2":
			more = c.removeMenuItem(ctx)
		case "3":
			more = c.takeOrder(ctx)
		case "4":
			c.printList("Current Orders:", c.bookkeeper.ListOrders(ctx))
			more = true
		case "5":
			more = c.reserveTable(ctx)
		case "6":
			c.printList("Current Reservations:", c.bookkeeper.ListReservations(ctx))
			more = true
		case "7":
			c.println("Thank you for using the Restaurant Management System!")
			return nil
		case "8":
			more = c.addTable(ctx)
		case "9":
			c.listTables(ctx)
			more = true
		default:
			c.println("Invalid option. Please choose a valid number (1-9).\n")
			more = true
		}
		if !more {
			return c.err()
		}
	}
	return nil
}

func (c *Console) addMenuItem(ctx context.Context) bool {
	raw, ok := c.prompt(ctx, "Enter the name of the dish: ")
	if !ok {
		return false
	}
	name, err := validation.ValidateName("name", raw)
	if err != nil {
		c.printError(err)
		return true
	}

	rawPrice, ok := c.prompt(ctx, fmt.Sprintf("Enter the price for %s: ", name))
	if !ok {
		return false
	}
	price, err := validation.ParsePrice(rawPrice)
	if err != nil {
		c.printError(err)
		return true
	}

	c.bookkeeper.AddMenuItem(ctx, name, price)
	c.println(fmt.Sprintf("%s has been added to the menu.\n", name))
	return true
}

func (c *Console) removeMenuItem(ctx context.Context) bool {
	name, ok := c.prompt(ctx, "Enter the name of the dish to remove: ")
	if !ok {
		return false
	}

	message, err := c.bookkeeper.RemoveMenuItem(ctx, strings.TrimSpace(name))
	if err != nil {
		c.printError(err)
		return true
	}
	c.println(message + ".\n")
	return true
}

func (c *Console) takeOrder(ctx context.Context) bool {
	raw, ok := c.prompt(ctx, "Enter the order number: ")
	if !ok {
		return false
	}
	number, err := validation.ValidateName("order_number", raw)
	if err != nil {
		c.printError(err)
		return true
	}

	var items []string
	for {
		line, ok := c.prompt(ctx, "Enter the name of the item to add to the order (or type 'done' to finish): ")
		if !ok {
			return false
		}
		name := strings.TrimSpace(line)
		if strings.EqualFold(name, "done") {
			break
		}
		if _, err := c.bookkeeper.MenuItem(ctx, name); err != nil {
			c.println(fmt.Sprintf("%s is not available in the menu.", name))
			continue
		}
		items = append(items, name)
		c.println(fmt.Sprintf("%s has been added to the order.", name))
	}

	if _, err := c.bookkeeper.PlaceOrder(ctx, number, items); err != nil {
		c.printError(err)
		return true
	}
	c.println(fmt.Sprintf("Order #%s has been placed.\n", number))
	return true
}

func (c *Console) reserveTable(ctx context.Context) bool {
	raw, ok := c.prompt(ctx, "Enter the customer name: ")
	if !ok {
		return false
	}
	customer, err := validation.ValidateName("customer_name", raw)
	if err != nil {
		c.printError(err)
		return true
	}

	rawNumber, ok := c.prompt(ctx, "Enter the table number: ")
	if !ok {
		return false
	}
	tableNumber, err := validation.ParsePositiveInt("table_number", rawNumber)
	if err != nil {
		c.printError(err)
		return true
	}

	rawTime, ok := c.prompt(ctx, "Enter reservation time (YYYY-MM-DD HH:MM:SS) or leave blank for now: ")
	if !ok {
		return false
	}
	at, err := validation.ParseReservationTime(rawTime)
	if err != nil {
		c.printError(err)
		return true
	}

	message, err := c.bookkeeper.ReserveTable(ctx, customer, tableNumber, at)
	if err != nil {
		c.printError(err)
		return true
	}
	c.println(message + "\n")
	return true
}

func (c *Console) addTable(ctx context.Context) bool {
	rawNumber, ok := c.prompt(ctx, "Enter the table number: ")
	if !ok {
		return false
	}
	number, err := validation.ParsePositiveInt("table_number", rawNumber)
	if err != nil {
		c.printError(err)
		return true
	}

	rawSeats, ok := c.prompt(ctx, "Enter the number of seats: ")
	if !ok {
		return false
	}
	seats, err := validation.ParsePositiveInt("seats", rawSeats)
	if err != nil {
		c.printError(err)
		return true
	}

	c.println(c.bookkeeper.AddTable(ctx, number, seats) + "\n")
	return true
}

func (c *Console) listTables(ctx context.Context) {
	tables := c.bookkeeper.Tables(ctx)
	if len(tables) == 0 {
		c.println("No tables have been added yet.\n")
		return
	}
	c.println("Tables:")
	for _, table := range tables {
		c.println(table.String())
	}
}

func (c *Console) printList(title string, lines []string) {
	if len(lines) == 1 && (lines[0] == domain.NoCurrentOrders || lines[0] == domain.NoCurrentReservations) {
		c.println(lines[0] + "\n")
		return
	}
	c.println(title)
	for _, line := range lines {
		c.println(line)
	}
}

func (c *Console) read(ctx context.Context) {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-ctx.Done():
			return
		}
	}
	c.readErr = c.in.Err()
}

// prompt reports false on end of input or a cancelled ctx.
func (c *Console) prompt(ctx context.Context, text string) (string, bool) {
	fmt.Fprint(c.out, text)
	select {
	case line, ok := <-c.lines:
		if !ok {
			c.eof = true
		}
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (c *Console) err() error {
	if c.eof {
		return c.readErr
	}
	return nil
}

func (c *Console) printError(err error) {
	fmt.Fprintf(c.out, "Error: %v\n\n", err)
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}
