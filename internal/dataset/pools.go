package dataset

// Fixed name pools the generator draws from. Pool contents only affect the
// cosmetic shape of the data, not any invariant.

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa",
	"William", "Jennifer", "James", "Mary", "Christopher", "Patricia", "Daniel",
	"Linda", "Matthew", "Elizabeth", "Anthony", "Barbara", "Mark", "Susan",
	"Donald", "Jessica", "Steven", "Dorothy", "Andrew", "Sarah", "Kenneth", "Nancy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
}

var productNames = []string{
	"Wireless Headphones", "Smartphone Case", "Laptop Bag", "Gaming Mouse",
	"Bluetooth Speaker", "USB Cable", "Power Bank", "Wireless Charger",
	"Screen Protector", "Keyboard", "Monitor Stand", "Desk Lamp",
	"Coffee Mug", "Water Bottle", "Notebook", "Pen Set", "Backpack",
	"Tablet Stand", "Phone Holder", "Camera Lens", "Memory Card",
	"External Drive", "Router", "Webcam", "Microphone",
}
