package i18n

// Route codes used as keys of the route specific messages. They match the
// callback data of the route keyboard.
const (
	routeAirOutbound  = "Air AM to USA"
	routeAirInbound   = "Air USA to AM"
	routeOceanInbound = "Ocean USA to AM"
)

const (
	notFoundInboundHy = "Հարգելի՛ hաճախորդ, խնդրում ենք համոզվել, որ մուտքագրել եք ծանրոցի ճիշտ համարը։ Հիշեցում՝ ծանրոցի կարգավիճակը հասանելի կլինի հետևելու համար, եթե այն արդեն ուղարկվել է պահեստից մոտակա թռիչքով կամ կոնտեյներային բարձումով։ \n\n Եթե վստահ եք, որ ծանրոցը ուղարկվել է, և չեք կարողանում հետևել բեռին, խնդրում ենք կապվել մեր հաճախորդների սպասարկման բաժնի հետ։"
	notFoundInboundEn = "Dear customer, please ensure you have entered the correct waybill number. \n\n Package tracking will be available only if the package has been shipped from the warehouse by the next available flight or container loading. \n\n If you are sure that the package has been shipped but cannot track it, please contact our customer service team for assistance."
	whereToFind12Hy   = "Գործարքի ստացականի վերին աջ անկյունում կգտնեք 12 նիշանոց նույնականացման համար։"
	whereToFind12En   = "Check the top-right corner of your receipt for a 12-digit identification number."
)

// DefaultCatalog returns the catalog with the production texts.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultMessages(), defaultRouteMessages())
}

func defaultMessages() map[Key]Text {
	return map[Key]Text{
		KeyStart: {
			Primary:   "Բարի գալուստ Ամերիքան Գլոբալ Գրուփի առաքանիների ընթացքին հետևելու բոտ։\n\nԸնդամենը մուտքագրելով առաքանիների անհատական կոդը (waybill number)՝ կարող եք տեսնել կարգավիճակը",
			Secondary: "Welcome to the American Global Group Package Tracking Bot!\n\nSimply enter your package’s waybill number to check its status.",
		},
		KeyChooseRoute: {
			Primary:   "Ընտրեք ուղղությունը։",
			Secondary: "Select a shipping route.",
		},
		KeyLanguagePrompt: {
			Primary:   "Ընտրեք լեզուն / Choose your language:",
			Secondary: "Select your language:",
		},
		KeyLanguageSet: {
			Primary:   "Լեզուն ընտրված է հայերեն:",
			Secondary: "Language set to English.",
		},
		KeyError: {
			Primary:   "Ինչ-որ սխալ տեղի ունեցավ:",
			Secondary: "An error occurred:",
		},
		KeySelectWaybillFirst: {
			Primary:   "Խնդրում ենք նախ ընտրել ուղղությունը։",
			Secondary: "Please select a direction first.",
		},
		KeyRouteNotActive: {
			Primary:   "Տվյալ ուղղությունը դեռևս ակտիվ չէ։",
			Secondary: "This route is not active yet.",
		},
		KeyMissingWaybillColumn: {
			Primary:   "Սխալ: 'waybill' սյունը բացակայում է աղյուսակում։",
			Secondary: "Error: 'waybill' column is missing in the table.",
		},
		KeyEnterWaybill: {
			Primary:   "Մուտքագրեք ծանրոցի անհատական կոդը ամբողջությամբ, ինչպես գրված է հաստատող փաստաթղթի վրա։ Օրինակ՝ ",
			Secondary: "Enter your package’s waybill number exactly as written on the receipt. Example: ",
		},
		KeySharePhone: {
			Primary:   "Կցանկանա՞ք առաջինն իմանալ մեր հատուկ առաջարկների և զեղչերի մասին: 😊 Թողեք Ձեր հեռախոսահամարը, և մենք կտեղեկացնենք Ձեզ ամենահետաքրքիր նորությունները:",
			Secondary: "Would you like to be the first to know about our special offers and discounts? 😊 Leave your phone number, and we'll keep you updated with all our exciting news!",
		},
		KeyShare: {
			Primary:   "📲 Կիսվել",
			Secondary: "📲 Share",
		},
		KeyPhoneSaved: {
			Primary:   "Շնորհակալություն։",
			Secondary: "Thank you!",
		},
		KeyWhereToFindButton: {
			Primary:   "📍 Որտե՞ղ փնտրել",
			Secondary: "📍 Where to Find",
		},
		KeySelectedDirection: {
			Primary:   "Ընտրած ուղղություն՝ ",
			Secondary: "Selected direction: ",
		},
		KeyChangeDirection: {
			Primary:   "Փոխել ուղղությունը",
			Secondary: "Change a direction",
		},
		KeyUnknownDirection: {
			Primary:   "Հասկանալի ուղղություն չի գտնվել",
			Secondary: "Unknown direction",
		},
		KeyUnsupportedRoute: Same("Unsupported route."),
		KeyOrderDate: {
			Primary:   "Գործարքի ամսաթիվ",
			Secondary: "Order Date",
		},
		KeyHomeDeliveryOrdered: {
			Primary:   "Առաքում տուն պատվիրված է",
			Secondary: "Home delivery is ordered",
		},
		KeyHomeDeliveryNotOrder: {
			Primary:   "Առաքում տուն պատվիրված չէ",
			Secondary: "Home delivery is not ordered",
		},
		KeyReceivedByCustomer: {
			Primary:   "Ստացված է հաճախորդի կողմից",
			Secondary: "Received by the Customer",
		},
		KeyParcelStatus: {
			Primary:   "Առաքման կարգավիճակ",
			Secondary: "Parcel Status",
		},
		KeyEstimatedDeliveryUS: {
			Primary:   "Ժամանման նախատեսվող ամսաթիվ դեպի ԱՄՆ գրասենյակ",
			Secondary: "Estimated Delivery Date to the American Office",
		},
		KeyEstimatedDeliveryAM: {
			Primary:   "Ժամանման նախատեսվող ամսաթիվ դեպի Երևանյան գրասենյակ",
			Secondary: "Estimated Delivery Date to the Armenian Office",
		},
		KeyBroadcastForbidden: Same("You are not allowed to use this command."),
		KeyBroadcastUsage:     Same("Please provide the broadcast text. Example: /broadcast @all Hello everyone! || Hello everyone! | https://example.com/image.png"),
		KeyBroadcastDone:      Same("Broadcast completed: %d delivered, %d failed."),
		KeyCommandStart:       Same("Start the bot"),
		KeyCommandSetLanguage: Same("Change the language"),
		KeyCommandBroadcast:   Same("Broadcast a message to all users"),
		KeyCommandSubscribe:   Same("Get news and special offers"),
		KeyLanguageNamePrimary: {
			Primary:   "Հայերեն",
			Secondary: "Հայերեն",
		},
		KeyLanguageNameSecondary: Same("English"),
	}
}

func defaultRouteMessages() map[Key]map[string]Text {
	return map[Key]map[string]Text{
		KeyRouteName: {
			routeAirOutbound: {
				Primary:   "Օդային առաքում Հայաստանից ԱՄՆ",
				Secondary: "Air Shipments from Armenia to the USA",
			},
			routeAirInbound: {
				Primary:   "Օդային առաքում ԱՄՆ-ից Հայաստան",
				Secondary: "Air Shipments from the USA to Armenia",
			},
			routeOceanInbound: {
				Primary:   "Ծովային առաքում ԱՄՆ-ից Հայաստան",
				Secondary: "Ocean shipments from the USA to Armenia",
			},
		},
		KeyWhereToFind: {
			routeAirOutbound: {
				Primary:   "Գործարքի ստացականի վերին ձախ անկյունում կգտնեք 11 նիշանոց նույնականացման համար։",
				Secondary: "Check the top-left corner of your receipt for an 11-digit identification number.",
			},
			routeAirInbound:   {Primary: whereToFind12Hy, Secondary: whereToFind12En},
			routeOceanInbound: {Primary: whereToFind12Hy, Secondary: whereToFind12En},
		},
		KeyNotFound: {
			routeAirOutbound: {
				Primary:   "Հարգելի՛ hաճախորդ, խնդրում ենք համոզվել, որ մուտքագրել եք ծանրոցի ճիշտ համարը։ \n\n Եթե վստահ եք, որ ծանրոցը ուղարկվել է, և չեք կարողանում հետևել բեռին, խնդրում ենք կապվել մեր հաճախորդների սպասարկման բաժնի հետ։",
				Secondary: "No package with the provided information was found. \n\n Please ensure you have entered the correct code. \n\n If you are sure that the package has been shipped but cannot track it, please contact our customer service team for assistance.",
			},
			routeAirInbound:   {Primary: notFoundInboundHy, Secondary: notFoundInboundEn},
			routeOceanInbound: {Primary: notFoundInboundHy, Secondary: notFoundInboundEn},
		},
	}
}
