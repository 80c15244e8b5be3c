package main

import (
	"fmt"

	"github.com/sghaida/oopsolid/internal/config"
	dipbefore "github.com/sghaida/oopsolid/solid/dip/before"
	ispafter "github.com/sghaida/oopsolid/solid/isp/after"
	ispbefore "github.com/sghaida/oopsolid/solid/isp/before"
	lspafter "github.com/sghaida/oopsolid/solid/lsp/after"
	lspbefore "github.com/sghaida/oopsolid/solid/lsp/before"
	ocpafter "github.com/sghaida/oopsolid/solid/ocp/after"
	ocpbefore "github.com/sghaida/oopsolid/solid/ocp/before"
	srpafter "github.com/sghaida/oopsolid/solid/srp/after"
	srpbefore "github.com/sghaida/oopsolid/solid/srp/before"
)

const confirmationMessage = "Your order has been placed"

func runSRP(e env) error {
	p := &linePrinter{w: e.out}

	// before: one type, three reasons to change
	proc := srpbefore.NewOrderProcessor(srpbefore.Item{Price: 10, Quantity: 2}, srpbefore.Item{Price: 5, Quantity: 3})
	p.printf("before: OrderProcessor total: %v\n", proc.Total())
	if p.err == nil {
		p.err = proc.SendConfirmation(e.out, e.cfg.Email)
	}
	if p.err != nil {
		return p.err
	}

	order := srpafter.NewOrder(srpafter.Item{Price: 10, Quantity: 2}, srpafter.Item{Price: 5, Quantity: 3})
	saver := srpafter.NewOrderSaver(encoderFor(e.cfg.Format))
	if err := saver.Save(order, e.cfg.OrderFile); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	e.log.Info("order saved", "path", e.cfg.OrderFile, "format", e.cfg.Format, "total", order.Total())

	if err := srpafter.NewEmailSender(e.out).Send(e.cfg.Email, confirmationMessage); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	p.printf("Order total: %v\n", order.Total())
	return p.err
}

func encoderFor(format string) srpafter.Encoder {
	if format == config.FormatMsgpack {
		return srpafter.MsgpackEncoder{}
	}
	return srpafter.TextEncoder{}
}

func runOCP(e env) error {
	p := &linePrinter{w: e.out}

	for _, s := range []ocpbefore.Shape{
		ocpbefore.NewShape(ocpbefore.KindCircle, 5),
		ocpbefore.NewShape(ocpbefore.KindRectangle, 4, 6),
		ocpbefore.NewShape("triangle", 3, 8),
	} {
		area, err := s.Area()
		if err != nil {
			p.printf("before: %s: %v\n", s.Kind, err)
			continue
		}
		p.printf("before: %s area: %v\n", s.Kind, area)
	}

	shapes := []ocpafter.Shape{
		ocpafter.Circle{Radius: 5},
		ocpafter.Rectangle{Width: 4, Height: 6},
		ocpafter.Triangle{Base: 3, Height: 8},
	}
	for _, area := range ocpafter.Areas(shapes) {
		p.printf("Area: %v\n", area)
	}
	return p.err
}

func runLSP(e env) error {
	p := &linePrinter{w: e.out}

	flown, err := lspbefore.MakeBirdsFly([]lspbefore.Bird{lspbefore.Sparrow{}, lspbefore.Ostrich{}})
	for _, msg := range flown {
		p.printf("before: %s\n", msg)
	}
	if err != nil {
		p.printf("before: %v\n", err)
	}

	duck, ostrich := lspafter.Duck{}, lspafter.Ostrich{}
	p.printf("%s\n", lspafter.MakeBirdMove(duck))
	p.printf("%s\n", lspafter.MakeBirdMove(ostrich))
	p.printf("%s\n", lspafter.MakeBirdFly(duck))
	return p.err
}

func runISP(e env) error {
	p := &linePrinter{w: e.out}

	fed, err := ispbefore.LunchBreak([]ispbefore.Worker{ispbefore.Human{}, ispbefore.Robot{}})
	for _, msg := range fed {
		p.printf("before: %s\n", msg)
	}
	if err != nil {
		p.printf("before: %v\n", err)
	}

	human, robot := ispafter.Human{}, ispafter.Robot{}
	for _, msg := range ispafter.Shift([]ispafter.Worker{human, robot}) {
		p.printf("%s\n", msg)
	}
	for _, msg := range ispafter.LunchBreak([]ispafter.Eater{human}) {
		p.printf("%s\n", msg)
	}
	return p.err
}

func runDIP(e env) error {
	p := &linePrinter{w: e.out}
	p.printf("before:\n")
	if p.err != nil {
		return p.err
	}
	if err := dipbefore.NewComputer(e.out).Start(); err != nil {
		return err
	}

	computer, err := buildComputer(deviceRegistry(e.out), e.cfg)
	if err != nil {
		return err
	}
	e.log.Debug("computer wired",
		"input", e.cfg.InputDevice,
		"output", e.cfg.OutputDevice,
		"deps", len(computer.Deps))

	p.printf("after:\n")
	if p.err != nil {
		return p.err
	}
	return computer.Value().Start()
}
