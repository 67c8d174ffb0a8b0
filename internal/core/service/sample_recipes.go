package service

import "github.com/moodmenu/recipe-api/internal/core/ports"

// SampleRecipes is the starter catalog loaded into an empty store.
var SampleRecipes = []ports.RecipeInput{
	{
		Name:         "Rainbow Veggie Pasta",
		Mood:         "happy",
		Ingredients:  "Pasta, Bell peppers, Cherry tomatoes, Zucchini, Olive oil, Garlic, Parmesan, Fresh basil",
		Instructions: "1. Cook pasta. 2. Saute the vegetables in olive oil with garlic. 3. Toss together. 4. Top with parmesan and basil.",
		PrepTime:     "25 minutes",
		Servings:     4,
		Image:        "🌈🍝",
	},
	{
		Name:         "Sunshine Smoothie Bowl",
		Mood:         "happy",
		Ingredients:  "Frozen mango, Banana, Orange juice, Greek yogurt, Granola, Fresh berries, Coconut flakes",
		Instructions: "1. Blend mango, banana, juice and yogurt. 2. Pour into a bowl. 3. Top with granola, berries and coconut.",
		PrepTime:     "10 minutes",
		Servings:     2,
		Image:        "🌞🥣",
	},
	{
		Name:         "Comfort Mac & Cheese",
		Mood:         "sad",
		Ingredients:  "Elbow macaroni, Butter, Flour, Milk, Cheddar, Mozzarella, Breadcrumbs",
		Instructions: "1. Cook macaroni. 2. Make a cheese sauce. 3. Combine. 4. Top with breadcrumbs and bake 20 minutes.",
		PrepTime:     "40 minutes",
		Servings:     6,
		Image:        "🧀🍝",
	},
	{
		Name:         "Chicken Noodle Soup",
		Mood:         "sad",
		Ingredients:  "Chicken breast, Egg noodles, Carrots, Celery, Onion, Chicken broth, Bay leaf, Parsley",
		Instructions: "1. Sweat the vegetables. 2. Add broth and chicken and simmer 20 minutes. 3. Shred chicken. 4. Add noodles and cook until tender.",
		PrepTime:     "45 minutes",
		Servings:     6,
		Image:        "🍲",
	},
	{
		Name:         "Power Protein Bowl",
		Mood:         "energetic",
		Ingredients:  "Quinoa, Grilled chicken, Avocado, Chickpeas, Spinach, Cherry tomatoes, Lemon tahini dressing",
		Instructions: "1. Cook quinoa. 2. Grill and slice chicken. 3. Arrange everything in a bowl. 4. Drizzle with dressing.",
		PrepTime:     "30 minutes",
		Servings:     2,
		Image:        "💪🥗",
	},
	{
		Name:         "Spicy Thai Stir-Fry",
		Mood:         "energetic",
		Ingredients:  "Rice noodles, Shrimp or tofu, Bell peppers, Snap peas, Thai basil, Soy sauce, Chili paste, Ginger",
		Instructions: "1. Cook noodles. 2. Stir-fry protein with garlic and ginger. 3. Add vegetables and sauce. 4. Toss with noodles and basil.",
		PrepTime:     "25 minutes",
		Servings:     4,
		Image:        "🍜🔥",
	},
	{
		Name:         "Lavender Honey Tea",
		Mood:         "relaxed",
		Ingredients:  "Water, Dried lavender, Honey, Lemon, Fresh mint",
		Instructions: "1. Steep lavender in boiling water for 5 minutes. 2. Strain. 3. Add honey and lemon. 4. Garnish with mint.",
		PrepTime:     "10 minutes",
		Servings:     1,
		Image:        "🍵",
	},
	{
		Name:         "Herb Roasted Salmon",
		Mood:         "relaxed",
		Ingredients:  "Salmon fillets, Dill, Lemon, Olive oil, Garlic, Asparagus",
		Instructions: "1. Season salmon with herbs and lemon. 2. Surround with asparagus. 3. Drizzle with oil. 4. Bake at 200C for 15 minutes.",
		PrepTime:     "25 minutes",
		Servings:     4,
		Image:        "🐟🌿",
	},
	{
		Name:         "Korean BBQ Tacos",
		Mood:         "adventurous",
		Ingredients:  "Beef bulgogi, Corn tortillas, Kimchi, Sesame seeds, Green onions, Sriracha mayo",
		Instructions: "1. Marinate and grill the beef. 2. Warm tortillas. 3. Fill with beef and kimchi. 4. Drizzle with sriracha mayo.",
		PrepTime:     "35 minutes",
		Servings:     4,
		Image:        "🌮",
	},
	{
		Name:         "Moroccan Tagine",
		Mood:         "adventurous",
		Ingredients:  "Lamb or chicken, Chickpeas, Apricots, Onions, Tomatoes, Cumin, Cinnamon, Couscous",
		Instructions: "1. Brown meat with spices. 2. Add vegetables and fruit. 3. Simmer an hour. 4. Serve over couscous.",
		PrepTime:     "90 minutes",
		Servings:     6,
		Image:        "🍲🌍",
	},
	{
		Name:         "Sushi Roll Bowl",
		Mood:         "adventurous",
		Ingredients:  "Sushi rice, Rice vinegar, Salmon, Avocado, Cucumber, Nori, Pickled ginger, Soy sauce, Sesame seeds",
		Instructions: "1. Cook and season the rice. 2. Slice fish and vegetables. 3. Arrange over rice. 4. Top with nori, ginger and sesame.",
		PrepTime:     "30 minutes",
		Servings:     2,
		Image:        "🍣🌊",
	},
	{
		Name:         "Celebration Cupcakes",
		Mood:         "happy",
		Ingredients:  "Flour, Sugar, Butter, Eggs, Milk, Vanilla, Baking powder, Frosting, Sprinkles",
		Instructions: "1. Mix dry ingredients. 2. Beat butter, sugar and eggs. 3. Combine with milk. 4. Bake at 350°F for 18-20 minutes. 5. Cool and frost.",
		PrepTime:     "45 minutes",
		Servings:     12,
		Image:        "🧁✨",
	},
	{
		Name:         "Unicorn Pancakes",
		Mood:         "happy",
		Ingredients:  "Flour, Milk, Eggs, Sugar, Baking powder, Food coloring, Whipped cream, Sprinkles",
		Instructions: "1. Make the batter and split it into bowls. 2. Tint each bowl a different color. 3. Swirl onto a hot griddle. 4. Stack and top with cream and sprinkles.",
		PrepTime:     "25 minutes",
		Servings:     3,
		Image:        "🦄🥞",
	},
	{
		Name:         "Tropical Paradise Poke Bowl",
		Mood:         "happy",
		Ingredients:  "Sushi rice, Ahi tuna, Mango, Pineapple, Edamame, Avocado, Soy sauce, Sesame oil, Macadamia nuts",
		Instructions: "1. Cook the rice. 2. Cube tuna and marinate in soy and sesame oil. 3. Dice the fruit. 4. Build the bowl and scatter nuts on top.",
		PrepTime:     "20 minutes",
		Servings:     2,
		Image:        "🌺🍚",
	},
	{
		Name:         "Warm Chocolate Chip Cookies",
		Mood:         "sad",
		Ingredients:  "Flour, Butter, Brown sugar, White sugar, Eggs, Vanilla, Baking soda, Chocolate chips",
		Instructions: "1. Cream butter and sugars. 2. Add eggs and vanilla. 3. Mix in dry ingredients. 4. Fold in chips. 5. Bake at 375°F for 10-12 minutes.",
		PrepTime:     "30 minutes",
		Servings:     24,
		Image:        "🍪❤️",
	},
	{
		Name:         "Grandma's Cinnamon Roll Bread Pudding",
		Mood:         "sad",
		Ingredients:  "Day-old cinnamon rolls, Eggs, Milk, Heavy cream, Brown sugar, Vanilla, Cinnamon, Caramel sauce",
		Instructions: "1. Tear rolls into a buttered dish. 2. Whisk eggs, milk, cream and sugar. 3. Pour over and soak 20 minutes. 4. Bake 45 minutes. 5. Drizzle with caramel.",
		PrepTime:     "75 minutes",
		Servings:     8,
		Image:        "🥐💝",
	},
	{
		Name:         "Ultimate Grilled Cheese & Tomato Soup",
		Mood:         "sad",
		Ingredients:  "Sourdough, Cheddar, Gruyere, Butter, Canned tomatoes, Onion, Garlic, Cream, Basil",
		Instructions: "1. Simmer tomatoes with onion and garlic, then blend with cream. 2. Butter the bread. 3. Grill the sandwiches until the cheese melts. 4. Serve with the soup.",
		PrepTime:     "35 minutes",
		Servings:     4,
		Image:        "🧀🍅",
	},
	{
		Name:         "Energy Breakfast Burrito",
		Mood:         "energetic",
		Ingredients:  "Flour tortillas, Eggs, Black beans, Cheddar, Salsa, Avocado, Spinach, Hot sauce",
		Instructions: "1. Scramble the eggs. 2. Warm beans and tortillas. 3. Fill with eggs, beans, cheese and spinach. 4. Add salsa and avocado, then roll.",
		PrepTime:     "15 minutes",
		Servings:     2,
		Image:        "🌯⚡",
	},
	{
		Name:         "Dragon Fruit Açaí Power Smoothie",
		Mood:         "energetic",
		Ingredients:  "Frozen dragon fruit, Açaí pack, Banana, Almond milk, Protein powder, Chia seeds, Granola",
		Instructions: "1. Blend fruit, açaí, milk and protein powder. 2. Pour into a glass or bowl. 3. Top with chia and granola.",
		PrepTime:     "10 minutes",
		Servings:     2,
		Image:        "🐉💪",
	},
	{
		Name:         "Firecracker Shrimp Lettuce Wraps",
		Mood:         "energetic",
		Ingredients:  "Shrimp, Butter lettuce, Sriracha, Honey, Lime, Garlic, Carrots, Cucumber, Cilantro",
		Instructions: "1. Toss shrimp in sriracha, honey and garlic. 2. Sear 2 minutes per side. 3. Shred the vegetables. 4. Fill lettuce cups and finish with lime and cilantro.",
		PrepTime:     "20 minutes",
		Servings:     4,
		Image:        "🔥🥬",
	},
	{
		Name:         "Mediterranean Mezze Platter",
		Mood:         "relaxed",
		Ingredients:  "Hummus, Pita, Olives, Feta, Cucumber, Cherry tomatoes, Stuffed grape leaves, Olive oil",
		Instructions: "1. Warm and slice the pita. 2. Cut the vegetables. 3. Arrange everything on a board. 4. Drizzle hummus with olive oil.",
		PrepTime:     "15 minutes",
		Servings:     4,
		Image:        "🫒🧘",
	},
	{
		Name:         "Zen Garden Buddha Bowl",
		Mood:         "relaxed",
		Ingredients:  "Brown rice, Sweet potato, Chickpeas, Kale, Avocado, Pickled radish, Sesame dressing, Furikake",
		Instructions: "1. Cook the rice. 2. Roast sweet potato at 400°F for 25 minutes. 3. Arrange everything in a bowl. 4. Drizzle with dressing and sprinkle furikake.",
		PrepTime:     "35 minutes",
		Servings:     2,
		Image:        "🧘🥗",
	},
	{
		Name:         "Tuscan White Bean Soup",
		Mood:         "relaxed",
		Ingredients:  "Cannellini beans, Onion, Carrot, Celery, Garlic, Kale, Vegetable broth, Rosemary, Parmesan rind",
		Instructions: "1. Soften onion, carrot and celery. 2. Add garlic and rosemary. 3. Add beans, broth and rind, then simmer 25 minutes. 4. Stir in kale.",
		PrepTime:     "45 minutes",
		Servings:     6,
		Image:        "🫘🌿",
	},
	{
		Name:         "Miso Butter Ramen Burger",
		Mood:         "adventurous",
		Ingredients:  "Ramen noodles, Eggs, Ground beef, White miso, Butter, Scallions, Nori, Pickled ginger",
		Instructions: "1. Cook noodles, mix with egg and press into buns. 2. Pan-fry the buns until crisp. 3. Grill the patty. 4. Top with miso butter and assemble.",
		PrepTime:     "50 minutes",
		Servings:     2,
		Image:        "🍜🍔",
	},
	{
		Name:         "Ethiopian Doro Wat with Injera",
		Mood:         "adventurous",
		Ingredients:  "Chicken thighs, Onions, Berbere, Niter kibbeh, Garlic, Ginger, Hard-boiled eggs, Injera",
		Instructions: "1. Cook onions down slowly without oil. 2. Add kibbeh, berbere, garlic and ginger. 3. Braise the chicken 45 minutes. 4. Add eggs and serve on injera.",
		PrepTime:     "2 hours",
		Servings:     4,
		Image:        "🇪🇹🍛",
	},
	{
		Name:         "Matcha Tiramisu",
		Mood:         "adventurous",
		Ingredients:  "Ladyfingers, Mascarpone, Heavy cream, Sugar, Eggs, Matcha powder, Milk",
		Instructions: "1. Whisk matcha into warm milk. 2. Beat mascarpone with cream, sugar and yolks. 3. Dip ladyfingers and layer with cream. 4. Chill 6 hours and dust with matcha.",
		PrepTime:     "30 minutes plus chilling",
		Servings:     8,
		Image:        "🍵🍰",
	},
}
