package testutils

// Stat block texts shared by parser, repository and handler tests

// GoblinStatBlock is a classic layout with a trait, two attacks and no saves
const GoblinStatBlock = `Goblin
Small humanoid (goblinoid), neutral evil
Armor Class 15 (leather armor, shield)
Hit Points 7 (2d6)
Speed 30 ft.
STR 8 (-1) DEX 14 (+2) CON 10 (+0) INT 10 (+0) WIS 8 (-1) CHA 8 (-1)
Skills Stealth +6
Senses darkvision 60 ft., passive Perception 9
Languages Common, Goblin
Challenge 1/4 (50 XP)
Nimble Escape. The goblin can take the Disengage or Hide action as a bonus action on each of its turns.
Actions
Scimitar. Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage.
Shortbow. Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage.
`

// BanditStatBlock has misspelled AC, HP and speed labels
const BanditStatBlock = `Bandit
Medium humanoid (any race), any non-lawful alignment
Armr Clas 12 (leather armor)
Hit Pionts 11 (2d8 + 2)
Sped 30 ft.
STR 11 (+0) DEX 12 (+1) CON 12 (+1) INT 10 (+0) WIS 10 (+0) CHA 10 (+0)
Senses passive Perception 10
Languages any one language (usually Common)
Challenge 1/8 (25 XP)
Actions
Scimitar. Melee Weapon Attack: +3 to hit, reach 5 ft., one target. Hit: 4 (1d6 + 1) slashing damage.
`

// KnightStatBlock has saves, skills, defenses and a reactions section
const KnightStatBlock = `Knight
Medium humanoid (human), lawful good
Armor Class 18 (plate)
Hit Points 52 (8d8 + 16)
Speed 30 ft.
STR 16 (+3) DEX 11 (+0) CON 14 (+2) INT 11 (+0) WIS 11 (+0) CHA 15 (+2)
Saving Throws Con +4, Wis +2
Skills Athletics +5, Perception +2
Damage Resistances poison
Condition Immunities frightened
Senses passive Perception 12
Languages any one language (usually Common)
Challenge 3 (700 XP)
Brave. The knight has advantage on saving throws against being frightened.
Actions
Multiattack. The knight makes two melee attacks.
Greatsword. Melee Weapon Attack: +5 to hit, reach 5 ft., one target. Hit: 10 (2d6 + 3) slashing damage.
Heavy Crossbow. Ranged Weapon Attack: +2 to hit, range 100/400 ft., one target. Hit: 5 (1d10) piercing damage.
Leadership (Recharges after a Short or Long Rest). For 1 minute, the knight can utter a special command.
Reactions
Parry. The knight adds 2 to its AC against one melee attack that would hit it.
`

// ZombieStatBlock has label words inside its languages prose
const ZombieStatBlock = `Zombie
Medium undead, neutral evil
Armor Class 8
Hit Points 22 (3d8 + 9)
Speed 20 ft.
STR 13 (+1) DEX 6 (-2) CON 16 (+3) INT 3 (-4) WIS 6 (-2) CHA 5 (-3)
Saving Throws Wis +0
Damage Immunities poison
Condition Immunities poisoned
Senses darkvision 60 ft., passive Perception 8
Languages understands the languages it knew in life but can't speak
Challenge 1/4 (50 XP)
Undead Fortitude. If damage reduces the zombie to 0 hit points, it must make a Constitution saving throw with a DC of 5 + the damage taken, unless the damage is radiant or from a critical hit.
Actions
Slam. Melee Weapon Attack: +3 to hit, reach 5 ft., one target. Hit: 4 (1d6 + 1) bludgeoning damage.
`
