package service

// Button texts double as the user intents: the keyboards on every platform
// send them back verbatim.
const (
	ButtonNewQuestion = "Новый вопрос"
	ButtonGiveUp      = "Сдаться"
	ButtonScore       = "Мой счет"
)

const (
	msgGreeting  = "Привет. Я бот для викторин! Начинай, нажав на кнопку \"Новый вопрос\""
	msgPrompt    = "Ожидаем, что нажмешь \"Новый вопрос\""
	msgCorrect   = "Правильно! Поздравляю!"
	msgWrong     = "Неправильно... Попробуешь еще раз?"
	msgGoodbye   = "Пока! Надеемся тебя увидеть в будущем."
	revealFormat = "Правильный ответ: %s"

	// MsgTryAgain is what adapters show when the store is unavailable;
	// the turn is reported, never silently dropped.
	MsgTryAgain = "Что-то пошло не так. Попробуй еще раз."
)
