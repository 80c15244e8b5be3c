package oop

import "fmt"

// Species is shared by every Dog.
const Species = "Canis familiaris"

// Dog carries the per-value attributes of one dog.
type Dog struct {
	Name  string
	Breed string
	Age   int
}

// NewDog builds a Dog from its three attributes.
func NewDog(name, breed string, age int) Dog {
	return Dog{Name: name, Breed: breed, Age: age}
}

// Bark returns the sound every Dog makes.
func (Dog) Bark() string { return "Woof!" }

// Describe renders all per-value attributes on one line.
func (d Dog) Describe() string {
	return fmt.Sprintf("Name: %s, Breed: %s, Age: %d", d.Name, d.Breed, d.Age)
}

// Species returns the shared label. It reads the same for every Dog.
func (Dog) Species() string { return Species }
