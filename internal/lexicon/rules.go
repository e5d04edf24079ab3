package lexicon

// defaultRules are the built-in small-talk and identity responses, checked
// in order before the embedding index is consulted.
var defaultRules = [][2]string{
	{`how are you`, "I'm just a chatbot, but I'm doing great! How about you?"},
	{`how's it going`, "Everything is running smoothly! How can I assist you?"},
	{`how do you do`, "I'm doing well! Thanks for asking. How can I help?"},
	{`what is your name`, "I'm your Agricultural Chatbot! Here to assist you with farming-related queries."},
	{`who are you`, "I'm an AI-powered agricultural chatbot, here to help farmers and agriculture enthusiasts."},
	{`what can you do`, "I can provide information related to farming, crops, and agricultural best practices."},
	{`who created you`, "I was developed as part of a research project on AI and ML-powered agricultural chatbots."},
	{`are you a robot`, "Yes, I'm an AI chatbot, designed to help with agricultural questions."},
	{`do you speak other languages`, "Currently, I only support English."},
	{`tell me a joke`, "Why did the farmer win an award? Because he was outstanding in his field!"},
	{`tell me something interesting`, "Did you know? Earthworms can improve soil fertility by breaking down organic matter into nutrient-rich compost!"},
	{`hello`, "Hello! How can I assist you today?"},
	{`hi`, "Hi there! What would you like to know?"},
	{`hey`, "Hey! How’s it going?"},
	{`good morning`, "Good morning! Hope you have a great day ahead."},
	{`good afternoon`, "Good afternoon! How can I help?"},
	{`good evening`, "Good evening! Need any assistance?"},
	{`good night`, "Good night! Take care and rest well."},
	{`howdy`, "Howdy! What brings you here today?"},
	{`yo`, "Yo! What's up?"},
	{`namaste`, "Namaste! How can I assist you?"},
	{`hola`, "Hola! How can I help you?"},
	{`bonjour`, "Bonjour! What do you need assistance with?"},
}
