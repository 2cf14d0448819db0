package dashboard

// quotes is the fixed rotation for the quote of the day, indexed by
// day-of-month modulo length.
var quotes = []string{
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"It is during our darkest moments that we must focus to see the light. - Aristotle",
	"The way to get started is to quit talking and begin doing. - Walt Disney",
	"Don't let yesterday take up too much of today. - Will Rogers",
	"You learn more from failure than from success. Don't let it stop you. - Unknown",
	"If you are working on something exciting that you really care about, you don't have to be pushed. - Steve Jobs",
}
