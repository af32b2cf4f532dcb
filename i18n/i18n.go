package i18n

// DefaultLang is the storefront's primary language.
const DefaultLang = "pt"

// Langs lists the supported languages in menu order.
var Langs = []string{"pt", "en", "es"}

var translations = map[string]map[string]string{
	"pt": {
		"nav.home":            "Início",
		"nav.sell":            "Anunciar",
		"nav.cart":            "Carrinho",
		"nav.likes":           "Favoritos",
		"nav.login":           "Entrar",
		"nav.logout":          "Sair",
		"nav.register":        "Cadastrar",
		"nav.settings":        "Configurações",
		"nav.admin":           "Admin",
		"search.placeholder":  "O que você procura?",
		"search.button":       "Buscar",
		"search.empty":        "Nenhum anúncio encontrado.",
		"search.recent":       "Buscas recentes:",
		"map.draw":            "Desenhar área",
		"map.clear":           "Limpar área",
		"map.no_location":     "Alguns anúncios não aparecem no mapa por não terem localização.",
		"map.no_geo":          "Nenhum anúncio com localização no momento.",
		"map.results":         "Resultados na área",
		"map.filter":          "Filtrar por nome ou categoria",
		"map.unavailable":     "Mapa indisponível no momento. Tente novamente mais tarde.",
		"listing.price":       "Preço",
		"listing.category":    "Categoria",
		"listing.description": "Descrição",
		"listing.seller":      "Vendedor",
		"listing.contact":     "Falar com o vendedor",
		"listing.like":        "Favoritar",
		"listing.unlike":      "Desfavoritar",
		"listing.add_cart":    "Adicionar ao carrinho",
		"listing.remove_cart": "Remover do carrinho",
		"listing.comments":    "Comentários",
		"listing.new":         "Novo anúncio",
		"listing.edit":        "Editar anúncio",
		"listing.delete":      "Excluir anúncio",
		"listing.restore":     "Restaurar anúncio",
		"listing.save":        "Salvar",
		"comment.submit":      "Comentar",
		"comment.empty":       "Ainda não há comentários.",
		"auth.name":           "Nome",
		"auth.phone":          "Telefone",
		"auth.password":       "Senha",
		"auth.password2":      "Confirme a senha",
		"auth.code":           "Código de verificação",
		"auth.login":          "Entrar",
		"auth.register":       "Criar conta",
		"auth.verify":         "Verificar",
		"cart.title":          "Meu carrinho",
		"cart.empty":          "Seu carrinho está vazio.",
		"likes.title":         "Meus favoritos",
		"likes.empty":         "Você ainda não favoritou nenhum anúncio.",
	},
	"en": {
		"nav.home":            "Home",
		"nav.sell":            "Sell",
		"nav.cart":            "Cart",
		"nav.likes":           "Likes",
		"nav.login":           "Log in",
		"nav.logout":          "Log out",
		"nav.register":        "Sign up",
		"nav.settings":        "Settings",
		"nav.admin":           "Admin",
		"search.placeholder":  "What are you looking for?",
		"search.button":       "Search",
		"search.empty":        "No listings found.",
		"search.recent":       "Recent searches:",
		"map.draw":            "Draw area",
		"map.clear":           "Clear area",
		"map.no_location":     "Some listings are not on the map because they have no location.",
		"map.no_geo":          "No listings with a location yet.",
		"map.results":         "Results in area",
		"map.filter":          "Filter by name or category",
		"map.unavailable":     "Map is unavailable right now. Please try again later.",
		"listing.price":       "Price",
		"listing.category":    "Category",
		"listing.description": "Description",
		"listing.seller":      "Seller",
		"listing.contact":     "Contact seller",
		"listing.like":        "Like",
		"listing.unlike":      "Unlike",
		"listing.add_cart":    "Add to cart",
		"listing.remove_cart": "Remove from cart",
		"listing.comments":    "Comments",
		"listing.new":         "New listing",
		"listing.edit":        "Edit listing",
		"listing.delete":      "Delete listing",
		"listing.restore":     "Restore listing",
		"listing.save":        "Save",
		"comment.submit":      "Comment",
		"comment.empty":       "No comments yet.",
		"auth.name":           "Name",
		"auth.phone":          "Phone",
		"auth.password":       "Password",
		"auth.password2":      "Confirm password",
		"auth.code":           "Verification code",
		"auth.login":          "Log in",
		"auth.register":       "Create account",
		"auth.verify":         "Verify",
		"cart.title":          "My cart",
		"cart.empty":          "Your cart is empty.",
		"likes.title":         "My likes",
		"likes.empty":         "You have not liked any listings yet.",
	},
	"es": {
		"nav.home":            "Inicio",
		"nav.sell":            "Vender",
		"nav.cart":            "Carrito",
		"nav.likes":           "Favoritos",
		"nav.login":           "Entrar",
		"nav.logout":          "Salir",
		"nav.register":        "Registrarse",
		"nav.settings":        "Ajustes",
		"nav.admin":           "Admin",
		"search.placeholder":  "¿Qué estás buscando?",
		"search.button":       "Buscar",
		"search.empty":        "No se encontraron anuncios.",
		"search.recent":       "Búsquedas recientes:",
		"map.draw":            "Dibujar área",
		"map.clear":           "Limpiar área",
		"map.no_location":     "Algunos anuncios no aparecen en el mapa porque no tienen ubicación.",
		"map.no_geo":          "Ningún anuncio con ubicación todavía.",
		"map.results":         "Resultados en el área",
		"map.filter":          "Filtrar por nombre o categoría",
		"map.unavailable":     "El mapa no está disponible. Inténtalo de nuevo más tarde.",
		"listing.price":       "Precio",
		"listing.category":    "Categoría",
		"listing.description": "Descripción",
		"listing.seller":      "Vendedor",
		"listing.contact":     "Contactar al vendedor",
		"listing.like":        "Favorito",
		"listing.unlike":      "Quitar favorito",
		"listing.add_cart":    "Añadir al carrito",
		"listing.remove_cart": "Quitar del carrito",
		"listing.comments":    "Comentarios",
		"listing.new":         "Nuevo anuncio",
		"listing.edit":        "Editar anuncio",
		"listing.delete":      "Eliminar anuncio",
		"listing.restore":     "Restaurar anuncio",
		"listing.save":        "Guardar",
		"comment.submit":      "Comentar",
		"comment.empty":       "Todavía no hay comentarios.",
		"auth.name":           "Nombre",
		"auth.phone":          "Teléfono",
		"auth.password":       "Contraseña",
		"auth.password2":      "Confirma la contraseña",
		"auth.code":           "Código de verificación",
		"auth.login":          "Entrar",
		"auth.register":       "Crear cuenta",
		"auth.verify":         "Verificar",
		"cart.title":          "Mi carrito",
		"cart.empty":          "Tu carrito está vacío.",
		"likes.title":         "Mis favoritos",
		"likes.empty":         "Todavía no tienes anuncios favoritos.",
	},
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// T translates key into lang, falling back to the default language and
// finally to the key itself so missing entries stay visible.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLang][key]; ok {
		return s
	}
	return key
}
